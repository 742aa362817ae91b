package handlers

import (
	"colony-sim/internal/world"
)

// Context передает хендлеру состояние мира.
// Мир передается по ссылке: хендлер мутирует его напрямую.
type Context struct {
	World *world.World
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в вывод сессии напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст для оператора (может быть многострочным)
	MsgType string // Тип сообщения (INFO, COMBAT, ERROR)
	Quit    bool   // Сессия должна завершиться после вывода Msg
}

// HandlerFunc - это контракт для любой команды (spawn, give, tick, ...).
// args - токены строки БЕЗ имени команды.
type HandlerFunc func(ctx Context, args []string) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
