package dto

type SubjectRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=255"`
}

type ChapterRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=255"`
	SubjectID   uint   `json:"subject_id" binding:"required"`
}

type QuizRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	ChapterID    uint   `json:"chapter_id" binding:"required"`
	DateOfQuiz   string `json:"date_of_quiz"`                     // YYYY-MM-DD, optional
	TimeDuration string `json:"time_duration" binding:"required"` // HH:MM
	Remarks      string `json:"remarks" binding:"max=255"`
}

type QuestionRequest struct {
	QuestionStatement string `json:"question_statement" binding:"required"`
	Option1           string `json:"option1" binding:"required"`
	Option2           string `json:"option2" binding:"required"`
	Option3           string `json:"option3" binding:"required"`
	Option4           string `json:"option4" binding:"required"`
	CorrectOption     string `json:"correct_option" binding:"required"`
}

// SubmitAttemptRequest maps question ids (as JSON object keys) to the chosen
// option text.
type SubmitAttemptRequest struct {
	Answers map[string]string `json:"answers"`
}

type DraftQuestionsRequest struct {
	Topic string `json:"topic"`
	Count int    `json:"count" binding:"required,min=1,max=10"`
}
