package domain

// Plan is the subscription plan of a tenant
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// FreePlanNoteLimit is the maximum number of notes a tenant on the free plan may hold
const FreePlanNoteLimit = 3

// NoteLimit reports the note ceiling of the plan and whether one applies at all.
func (p Plan) NoteLimit() (int64, bool) {
	if p == PlanFree {
		return FreePlanNoteLimit, true
	}
	return 0, false
}

// LimitReached reports whether a tenant holding count notes may not create another one.
func (p Plan) LimitReached(count int64) bool {
	limit, limited := p.NoteLimit()
	return limited && count >= limit
}

func (p Plan) String() string {
	return string(p)
}
