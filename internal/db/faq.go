package db

import "gorm.io/gorm"

// FAQ is a localized question/answer pair.
type FAQ struct {
	gorm.Model
	Question   string `gorm:"not null"`
	QuestionEn string
	QuestionFr string
	Answer     string `gorm:"type:text;not null"`
	AnswerEn   string `gorm:"type:text"`
	AnswerFr   string `gorm:"type:text"`

	Category  string
	Order     int
	Published bool
}
