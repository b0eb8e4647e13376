package learning

// Question is one multiple-choice item. Options are kept exactly as the
// model produced them.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}
