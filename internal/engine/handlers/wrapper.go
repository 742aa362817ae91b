package handlers

import (
	"colony-sim/pkg/api"
	"fmt"
)

// ParseFunc превращает токены команды в типизированные аргументы
type ParseFunc[T any] func(args []string) (T, error)

// TypedHandlerFunc - это "чистый" хендлер, который работает с готовой структурой T
type TypedHandlerFunc[T any] func(ctx Context, args T) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны аргументы (species, help, exit)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithArgs берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя разбор и Validate.
func WithArgs[T any](parse ParseFunc[T], handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw []string) (Result, error) {
		// 1. Разбор токенов
		args, err := parse(raw)
		if err != nil {
			return Result{}, fmt.Errorf("invalid arguments: %w", err)
		}

		// 2. Автоматическая валидация
		// Проверяем, реализует ли структура T интерфейс Validator
		if v, ok := any(args).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("validation failed: %w", err)
			}
		}

		// 3. Вызов чистой логики
		return handler(ctx, args)
	}
}

// WithNoArgs - обертка для команд без аргументов.
// Лишние токены игнорируются.
func WithNoArgs(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ []string) (Result, error) {
		return handler(ctx)
	}
}
