package domain

// ReplayCommand - одна строка, введенная оператором
type ReplayCommand struct {
	Seq  int    `json:"seq"`
	Line string `json:"line"`
}

// ReplaySession - полная запись сессии.
// Это лента команд, а не снимок мира: состояние воспроизводится повторным выполнением.
type ReplaySession struct {
	SessionID string          `json:"sessionId"`
	Seed      int64           `json:"seed"` // Зерно рандома (перемешивание ростера)
	Timestamp int64           `json:"timestamp"`
	Commands  []ReplayCommand `json:"commands"`
}
