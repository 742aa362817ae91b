package storage

import (
	"colony-sim/internal/domain"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

const (
	MagicHeader string = `CSRP` // 4 байта
	Version1    uint32 = 1

	FileExt = ".csrp.zst"

	maxLineLen = 65535

	// maxPrealloc - сколько записей резервировать заранее при чтении
	maxPrealloc = 1024
)

// ReplayFileHeader — это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic        [4]byte  // 4 байта
	Version      uint32   // 4 байта
	SessionID    [16]byte // 16 байт (UUID)
	Seed         int64    // 8 байт
	Timestamp    int64    // 8 байт
	CommandCount uint32   // 4 байта
}

// CommandHeader — заголовок каждой записанной строки.
type CommandHeader struct {
	Seq     uint32 // 4
	LineLen uint16 // 2
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	return &ReplayService{SaveDir: dir}
}

// Save пишет сессию в SaveDir и возвращает путь к файлу.
// Весь бинарный поток сжимается zstd. При ошибке недописанный файл удаляется.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	if err := os.MkdirAll(s.SaveDir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("session_%d_%d%s", session.Seed, session.Timestamp, FileExt)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := writeCompressed(f, session); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}

func writeCompressed(w io.Writer, session *domain.ReplaySession) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := writeBinary(enc, session); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	// 1. Подготавливаем и пишем ГЛОБАЛЬНЫЙ ЗАГОЛОВОК
	id, err := uuid.Parse(s.SessionID)
	if err != nil {
		return fmt.Errorf("invalid session id %q: %w", s.SessionID, err)
	}

	header := ReplayFileHeader{
		Version:      Version1,
		SessionID:    id,
		Seed:         s.Seed,
		Timestamp:    s.Timestamp,
		CommandCount: uint32(len(s.Commands)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Пишем команды
	for _, cmd := range s.Commands {
		line := []byte(cmd.Line)
		if len(line) > maxLineLen {
			return fmt.Errorf("command %d too long: %d", cmd.Seq, len(line))
		}

		ch := CommandHeader{
			Seq:     uint32(cmd.Seq),
			LineLen: uint16(len(line)),
		}
		if err := binary.Write(w, binary.LittleEndian, &ch); err != nil {
			return err
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}

	return nil
}
