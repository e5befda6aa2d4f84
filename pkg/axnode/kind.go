package axnode

// Kind identifies the control family a node belongs to. The visibility
// resolver keys its implicit label/value fallback rules on it. Hosts
// bridging a different toolkit may introduce their own kinds and register
// matching fallback rules.
type Kind string

const (
	KindView              Kind = "view"
	KindLabel             Kind = "label"
	KindButton            Kind = "button"
	KindTextField         Kind = "text-field"
	KindTextView          Kind = "text-view"
	KindSwitch            Kind = "switch"
	KindSlider            Kind = "slider"
	KindStepper           Kind = "stepper"
	KindDatePicker        Kind = "date-picker"
	KindActivityIndicator Kind = "activity-indicator"
	KindProgress          Kind = "progress"
	KindImage             Kind = "image"
)

// Kind-specific field names consumed by the visibility resolver's
// per-kind fallback rules.
const (
	FieldText            = "text"
	FieldTitle           = "title"
	FieldAttributedTitle = "attributed-title"
	FieldPlaceholder     = "placeholder"
	FieldNumeric         = "numeric"
	FieldDate            = "date"
	FieldOn              = "on"
	FieldAnimating       = "animating"
)

func (k Kind) String() string {
	return string(k)
}
