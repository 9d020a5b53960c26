package core

type FieldType int64

const (
	RichText       FieldType = 0
	Number         FieldType = 1
	DateTime       FieldType = 2
	SingleSelect   FieldType = 3
	MultiSelect    FieldType = 4
	Checkbox       FieldType = 5
	URL            FieldType = 6
	Checklist      FieldType = 7
	LastEditedTime FieldType = 8
	CreatedTime    FieldType = 9
	Relation       FieldType = 10
)

func (t FieldType) String() string {
	switch t {
	case RichText:
		return "text"
	case Number:
		return "number"
	case DateTime:
		return "date"
	case SingleSelect:
		return "single_select"
	case MultiSelect:
		return "multi_select"
	case Checkbox:
		return "checkbox"
	case URL:
		return "url"
	case Checklist:
		return "checklist"
	case LastEditedTime:
		return "last_edited_time"
	case CreatedTime:
		return "created_time"
	case Relation:
		return "relation"
	default:
		return "unknown"
	}
}

// Field is a column definition. The aggregator only reads it.
type Field struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Type FieldType `json:"field_type"`
}

func NewField(id, name string, fieldType FieldType) *Field {
	return &Field{
		ID:   id,
		Name: name,
		Type: fieldType,
	}
}
