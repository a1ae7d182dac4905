package meeting

import "strings"

// UnknownField is the fallback value for a title or date the listing row
// does not carry.
const UnknownField = "Unknown"

// Label identifies one of the fixed document categories attached to a
// meeting row.
type Label string

const (
	LabelAgenda       Label = "Agenda"
	LabelPackage      Label = "Package"
	LabelActionReport Label = "Action Report"
	LabelMinutes      Label = "Minutes"
	LabelCOADReport   Label = "COAD Report"
)

// labelOrder is the order documents are probed and downloaded in.
var labelOrder = []Label{
	LabelAgenda,
	LabelPackage,
	LabelActionReport,
	LabelMinutes,
	LabelCOADReport,
}

// Labels returns the document labels in their fixed probe order.
func Labels() []Label {
	out := make([]Label, len(labelOrder))
	copy(out, labelOrder)
	return out
}

// Meeting represents one row on the paginated meetings listing.
// Documents maps each label to an absolute URL; labels with no link on the
// row are absent from the map.
type Meeting struct {
	Title     string
	Date      string
	Documents map[Label]string
}

// NewMeeting creates a Meeting with trimmed title and date, falling back to
// UnknownField when either is empty.
func NewMeeting(title, date string) *Meeting {
	title = strings.TrimSpace(title)
	if title == "" {
		title = UnknownField
	}
	date = strings.TrimSpace(date)
	if date == "" {
		date = UnknownField
	}
	return &Meeting{
		Title:     title,
		Date:      date,
		Documents: make(map[Label]string),
	}
}

// Record is one line of the summary CSV, created for each document whose
// probe saw a PDF content type and whose download succeeded.
type Record struct {
	Title  string
	Date   string
	PDFURL string
	File   string
}
