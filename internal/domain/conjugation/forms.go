package conjugation

// FormKey identifies one of the 18 conjugated forms the engine produces.
type FormKey string

// The closed enumeration of form kinds, formal register first.
const (
	FormMasuPresent         FormKey = "masuPresent"
	FormMasuPresentNegative FormKey = "masuPresentNegative"
	FormMasuPast            FormKey = "masuPast"
	FormMasuPastNegative    FormKey = "masuPastNegative"
	FormInvitation          FormKey = "invitation"
	FormDesireFormal        FormKey = "desireFormal"
	FormPermission          FormKey = "permission"
	FormProhibition         FormKey = "prohibition"
	FormProgressiveFormal   FormKey = "progressiveFormal"
	FormDictionary          FormKey = "dictionary"
	FormPlainNegative       FormKey = "plainNegative"
	FormPlainPast           FormKey = "plainPast"
	FormPlainPastNegative   FormKey = "plainPastNegative"
	FormDesireInformal      FormKey = "desireInformal"
	FormInvitationInformal  FormKey = "invitationInformal"
	FormRequest             FormKey = "request"
	FormNegativeRequest     FormKey = "negativeRequest"
	FormProgressiveInformal FormKey = "progressiveInformal"
)

// AllFormKeys lists every form kind in output order. Conjugate returns one
// entry per key, in exactly this order.
var AllFormKeys = []FormKey{
	FormMasuPresent,
	FormMasuPresentNegative,
	FormMasuPast,
	FormMasuPastNegative,
	FormInvitation,
	FormDesireFormal,
	FormPermission,
	FormProhibition,
	FormProgressiveFormal,
	FormDictionary,
	FormPlainNegative,
	FormPlainPast,
	FormPlainPastNegative,
	FormDesireInformal,
	FormInvitationInformal,
	FormRequest,
	FormNegativeRequest,
	FormProgressiveInformal,
}

// Form is a single conjugated surface form.
type Form struct {
	Key     FormKey `json:"key"`
	Surface string  `json:"surface"`
}
