package metrics

// Attribute keys shared by the OTel instruments.
const (
	AttrMethod  = "method"
	AttrPath    = "path"
	AttrStatus  = "status"
	AttrOp      = "op"
	AttrOutcome = "outcome"
	AttrRecord  = "record"
	AttrFrom    = "from"
	AttrTo      = "to"
	AttrType    = "type"
)

// Outcome values for mutation counters.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
)
