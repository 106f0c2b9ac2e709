package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/passgen"
	"github.com/passforge/passforge-go/internal/repository"
)

var ErrLengthExceedsMax = errors.New("password length exceeds the configured maximum")

// GeneratorService handles password generation business logic. It is the
// only writer of generation history; recording is best-effort and never
// fails a generation.
type GeneratorService struct {
	maxLength  int
	thresholds passgen.Thresholds
	history    *repository.HistoryRepository // nil disables history recording
}

// NewGeneratorService creates a new GeneratorService. history may be nil
// when no database is available.
func NewGeneratorService(maxLength int, history *repository.HistoryRepository) *GeneratorService {
	if maxLength < 1 {
		maxLength = passgen.DefaultMaxLength
	}
	return &GeneratorService{
		maxLength:  maxLength,
		thresholds: passgen.DefaultThresholds(),
		history:    history,
	}
}

// Generate produces a password for the given request and rates its strength.
// userID 0 means anonymous: no history is recorded.
func (s *GeneratorService) Generate(ctx context.Context, userID int64, req model.GenerateRequest) (model.GenerateResponse, error) {
	classes := enabledClasses(req)
	pool := passgen.BuildPool(classes)

	length := req.Length
	if length == 0 {
		length = s.maxLength
	}
	if length > s.maxLength {
		return model.GenerateResponse{}, ErrLengthExceedsMax
	}

	password, err := passgen.Generate(length, pool)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	strength := s.thresholds.Classify(length)

	if userID > 0 && s.history != nil {
		s.record(ctx, userID, length, classes, strength)
	}

	return model.GenerateResponse{
		Password: password,
		Length:   length,
		Strength: strength.String(),
	}, nil
}

// Classify rates a password length without generating anything.
func (s *GeneratorService) Classify(length int) (model.StrengthResponse, error) {
	if length < 0 {
		return model.StrengthResponse{}, passgen.ErrInvalidLength
	}

	return model.StrengthResponse{
		Length:   length,
		Strength: s.thresholds.Classify(length).String(),
	}, nil
}

// record persists history metadata. Failures are logged, not surfaced: the
// generated password has already been produced and belongs to the caller.
func (s *GeneratorService) record(ctx context.Context, userID int64, length int, classes []passgen.Class, strength passgen.Strength) {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = string(c)
	}

	rec := model.HistoryRecord{
		UserID:   userID,
		Length:   length,
		Classes:  strings.Join(names, ","),
		Strength: strength.String(),
	}

	if err := s.history.Create(ctx, &rec); err != nil {
		slog.Warn("recording generation history failed", "user_id", userID, "error", err)
	}
}

// enabledClasses converts the request's pointer bools into the enabled class
// set, in pool concatenation order. A nil pointer means enabled.
func enabledClasses(req model.GenerateRequest) []passgen.Class {
	var classes []passgen.Class
	if boolOrDefault(req.Uppercase, true) {
		classes = append(classes, passgen.ClassUppercase)
	}
	if boolOrDefault(req.Lowercase, true) {
		classes = append(classes, passgen.ClassLowercase)
	}
	if boolOrDefault(req.Numbers, true) {
		classes = append(classes, passgen.ClassNumbers)
	}
	if boolOrDefault(req.Symbols, true) {
		classes = append(classes, passgen.ClassSymbols)
	}
	return classes
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
