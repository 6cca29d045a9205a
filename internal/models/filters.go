package models

import "time"

// Filters - фильтры текущей выборки по участникам, тяжести и годам
type Filters struct {
	Car        bool
	Bike       bool
	Pedestrian bool
	Fatal      bool
	Serious    bool
	Minor      bool
	StartYear  int
	EndYear    int
}

// ImportOutcome - итог одного импорта выгрузки
type ImportOutcome struct {
	Source   string `json:"source"`
	Accepted int    `json:"accepted"`
	Rejected int    `json:"rejected"`
	Inserted int    `json:"inserted"`
}

// ImportStatus - состояние фоновой задачи импорта
type ImportStatus struct {
	ID          string
	Status      string
	Outcome     ImportOutcome
	Error       string
	SubmittedAt time.Time
	FinishedAt  time.Time
}
