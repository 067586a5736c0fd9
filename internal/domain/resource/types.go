package resource

import "encoding/json"

// Kind is the closed set of bookable resource categories.
type Kind string

const (
	KindRoom        Kind = "room"
	KindEquipment   Kind = "equipment"
	KindBook        Kind = "book"
	KindFacultyHour Kind = "faculty_hour"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindRoom, KindEquipment, KindBook, KindFacultyHour:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}

// Details carries the kind-specific fields. The booking engine never reads
// these; it only uses the common id/capacity/isActive envelope.
type Details interface {
	Kind() Kind
}

type RoomDetails struct {
	Location string `json:"location,omitempty"`
	Seats    int    `json:"seats,omitempty"`
}

func (RoomDetails) Kind() Kind { return KindRoom }

type EquipmentDetails struct {
	Location string `json:"location,omitempty"`
	Model    string `json:"model,omitempty"`
}

func (EquipmentDetails) Kind() Kind { return KindEquipment }

type BookDetails struct {
	ISBN   string `json:"isbn,omitempty"`
	Author string `json:"author,omitempty"`
}

func (BookDetails) Kind() Kind { return KindBook }

type FacultyHourDetails struct {
	FacultyName string `json:"facultyName,omitempty"`
	Office      string `json:"office,omitempty"`
}

func (FacultyHourDetails) Kind() Kind { return KindFacultyHour }

// UnmarshalDetails decodes the stored detail payload into the variant
// matching kind. Empty payloads yield nil details.
func UnmarshalDetails(kind Kind, data []byte) (Details, error) {
	if len(data) == 0 {
		return nil, nil
	}
	switch kind {
	case KindRoom:
		var d RoomDetails
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	case KindEquipment:
		var d EquipmentDetails
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	case KindBook:
		var d BookDetails
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	case KindFacultyHour:
		var d FacultyHourDetails
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, ErrInvalidKind
	}
}
