package entity

type LogComment struct {
	Id        string `json:"id"`
	Author    Author `json:"author"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

type LogEntry struct {
	Id        string       `json:"id"`
	Author    Author       `json:"author"`
	Text      string       `json:"text"`
	CreatedAt string       `json:"createdAt"`
	Comments  []LogComment `json:"comments"`
}

// service input model
type CreateLogEntryInput struct {
	Author Author `yaml:"author"`
	Text   string `yaml:"text"`
	// Id, CreatedAt set automatically
}

// service input model, nil fields keep the stored value
type UpdateLogEntryInput struct {
	Text *string
}

// service input model
type CreateLogCommentInput struct {
	Author Author
	Text   string
}

type Announcement struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Author    Author `json:"author"`
	CreatedAt string `json:"createdAt"`
}

// service input model
type CreateAnnouncementInput struct {
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
	Author Author `yaml:"author"`
}

// service input model, nil fields keep the stored value
type UpdateAnnouncementInput struct {
	Title *string
	Text  *string
}
