package engine

import (
	"bufio"
	"colony-sim/internal/domain"
	"colony-sim/pkg/logger"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const (
	Banner = "Colony simulation started. Enter commands (type 'exit' to quit):"
	Prompt = "> "
)

// Run - интерактивный цикл: одна команда на строку.
// Завершается по exit или по концу ввода.
func (s *Service) Run(in io.Reader, out io.Writer) error {
	if _, err := fmt.Fprintln(out, Banner); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if _, err := fmt.Fprint(out, Prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			break
		}

		result := s.Execute(scanner.Text())
		if err := writeResult(out, result.Msg); err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
	}

	// Конец ввода без exit - штатное завершение
	logger.Log.WithField("component", "session").Info("Input closed.")
	return scanner.Err()
}

// RunReplay выполняет записанную сессию заново, печатая каждую команду перед ее результатом.
// Сервис должен быть создан с тем же сидом, что и запись.
func (s *Service) RunReplay(session *domain.ReplaySession, out io.Writer) error {
	logger.Log.WithFields(logrus.Fields{
		"component":  "session",
		"session_id": session.SessionID,
		"commands":   len(session.Commands),
	}).Info("Replaying session.")

	for _, cmd := range session.Commands {
		if _, err := fmt.Fprintf(out, "%s%s\n", Prompt, cmd.Line); err != nil {
			return err
		}
		result := s.Execute(cmd.Line)
		if err := writeResult(out, result.Msg); err != nil {
			return err
		}
		if result.Quit {
			break
		}
	}
	return nil
}

func writeResult(out io.Writer, msg string) error {
	if msg == "" {
		return nil
	}
	_, err := fmt.Fprintln(out, msg)
	return err
}
