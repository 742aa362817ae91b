package storage

import (
	"colony-sim/internal/domain"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return readBinary(dec)
}

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	session := &domain.ReplaySession{
		SessionID: uuid.UUID(header.SessionID).String(),
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Commands:  make([]domain.ReplayCommand, 0, min(int(header.CommandCount), maxPrealloc)),
	}

	// 2. Читаем команды. Счетчику из файла не доверяем: буфер растет по мере чтения.
	for i := 0; i < int(header.CommandCount); i++ {
		var ch CommandHeader
		if err := binary.Read(r, binary.LittleEndian, &ch); err != nil {
			return nil, fmt.Errorf("failed to read command %d: %w", i, err)
		}

		buf := make([]byte, ch.LineLen)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("failed to read command %d: %w", i, err)
		}

		session.Commands = append(session.Commands, domain.ReplayCommand{Seq: int(ch.Seq), Line: string(buf)})
	}

	return session, nil
}
