package intake

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhillyerd/enmime"
	"go.uber.org/zap"

	"wingorder/internal"
	"wingorder/internal/storage"
)

// FetchResult reports one mailbox sync pass.
type FetchResult struct {
	Fetched int
	Stored  int
}

// FetchService downloads unread mail and files away any spreadsheet
// attachments for the order pipeline to pick up.
type FetchService struct {
	db        *storage.DB
	connector *Connector
	logger    *zap.Logger
	dir       string
}

func NewFetchService(db *storage.DB, connector *Connector, dir string, logger *zap.Logger) *FetchService {
	return &FetchService{db: db, connector: connector, logger: logger, dir: dir}
}

// FetchAndStore pulls up to max unread messages from mailbox and stores
// their spreadsheet attachments. Messages already recorded are skipped.
func (s *FetchService) FetchAndStore(mailbox string, max int) (FetchResult, error) {
	messages, err := s.connector.FetchInbox(mailbox, max)
	if err != nil {
		return FetchResult{}, fmt.Errorf("fetch inbox: %w", err)
	}

	result := FetchResult{Fetched: len(messages)}
	for _, msg := range messages {
		seen, err := s.db.HasInboxMessage(msg.MessageID)
		if err != nil {
			return result, err
		}
		if seen {
			continue
		}

		stored, err := s.storeAttachments(msg)
		if err != nil {
			s.logger.Warn("attachment store failed",
				zap.String("messageId", msg.MessageID),
				zap.Error(err))
			continue
		}
		result.Stored += stored
	}

	s.logger.Info("mailbox sync",
		zap.String("mailbox", mailbox),
		zap.Int("fetched", result.Fetched),
		zap.Int("stored", result.Stored))
	return result, nil
}

func (s *FetchService) storeAttachments(msg FetchedMessage) (int, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(msg.Raw))
	if err != nil {
		return 0, fmt.Errorf("parse message: %w", err)
	}

	stored := 0
	for _, part := range env.Attachments {
		if !IsSpreadsheet(part.FileName) {
			continue
		}

		path, err := s.writeAttachment(msg.MessageID, part.FileName, part.Content)
		if err != nil {
			return stored, err
		}

		record := internal.InboxFile{
			MessageID:  msg.MessageID,
			Subject:    msg.Subject,
			Sender:     msg.From,
			ReceivedAt: msg.ReceivedAt,
			FileName:   part.FileName,
			Path:       path,
			Status:     "fetched",
		}
		if err := s.db.UpsertInboxFile(record); err != nil {
			return stored, err
		}
		stored++
	}
	return stored, nil
}

func (s *FetchService) writeAttachment(messageID, fileName string, content []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	sum := sha256.Sum256([]byte(messageID))
	name := fmt.Sprintf("%s_%s", hex.EncodeToString(sum[:8]), sanitizeFileName(fileName))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// IsSpreadsheet reports whether the attachment looks like an order or
// invoice workbook.
func IsSpreadsheet(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".xlsx" || ext == ".xls"
}

func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	name = replacer.Replace(name)
	if strings.TrimSpace(name) == "" {
		return "attachment.xlsx"
	}
	return name
}
