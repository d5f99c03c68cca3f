package dto

type SearchResponse struct {
	Query    string            `json:"query"`
	Users    []UserResponse    `json:"users"`
	Subjects []SubjectResponse `json:"subjects"`
	Quizzes  []QuizResponse    `json:"quizzes"`
}

type ExportResponse struct {
	Filepath string `json:"filepath"`
	Filename string `json:"filename"`
}

type JobAcceptedResponse struct {
	Job     string `json:"job"`
	Message string `json:"message"`
}

// QuestionDraft is a generated question that has not been saved.
type QuestionDraft struct {
	QuestionStatement string `json:"question_statement"`
	Option1           string `json:"option1"`
	Option2           string `json:"option2"`
	Option3           string `json:"option3"`
	Option4           string `json:"option4"`
	CorrectOption     string `json:"correct_option"`
}

type DraftQuestionsResponse struct {
	QuizID uint            `json:"quiz_id"`
	Drafts []QuestionDraft `json:"drafts"`
}
