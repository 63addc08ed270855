package survey

// Field names a filterable categorical column
type Field string

const (
	FieldGender    Field = "gender"
	FieldEducation Field = "education_level"
	FieldPlatform  Field = "platform"
)

// Wildcard is the selector value that places no constraint on a field
const Wildcard = "all"

// Predicate maps fields to selected values. A missing entry, an empty value,
// or the Wildcard all mean "no constraint". Entries combine with logical AND.
type Predicate map[Field]string

// Constrained reports whether the predicate narrows the table at all
func (p Predicate) Constrained() bool {
	for _, v := range p {
		if v != "" && v != Wildcard {
			return true
		}
	}
	return false
}

// Matches reports whether a respondent satisfies every active constraint
func (p Predicate) Matches(r Respondent) bool {
	for field, want := range p {
		if want == "" || want == Wildcard {
			continue
		}
		var got string
		switch field {
		case FieldGender:
			got = string(r.Gender)
		case FieldEducation:
			got = string(r.Education)
		case FieldPlatform:
			got = string(r.Platform)
		default:
			// Unknown fields can never match a row, mirroring the
			// zero-rows behavior for unknown categorical values.
			return false
		}
		if got != want {
			return false
		}
	}
	return true
}

// Filter returns a new view containing exactly the rows matching the
// predicate. The input table is never mutated. When nothing matches the
// result is an empty table with the same dataset identity; this is a valid
// degenerate state, not an error.
func Filter(t Table, p Predicate) Table {
	if !p.Constrained() {
		return t
	}
	matched := make([]Respondent, 0, t.Len())
	for _, r := range t.rows {
		if p.Matches(r) {
			matched = append(matched, r)
		}
	}
	return Table{id: t.id, generatedAt: t.generatedAt, rows: matched}
}
