package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"wheelspin-backend/internal/features/wheel/models"
)

const (
	// Максимальные длины для различных полей
	MaxWheelNameLength  = 200
	MaxEntryLabelLength = 100
	MaxEntries          = 1000

	MinWinnersCount = 1
	MinEntryWeight  = 1
)

// ValidateWheelName проверяет название колеса
func ValidateWheelName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxWheelNameLength {
		return fmt.Errorf("name cannot exceed %d characters", MaxWheelNameLength)
	}

	return nil
}

// ValidateWinnersCount проверяет количество победителей
func ValidateWinnersCount(count int) error {
	if count < MinWinnersCount {
		return fmt.Errorf("winners_count must be at least %d", MinWinnersCount)
	}
	return nil
}

// ValidateEntryLabel проверяет подпись сектора
func ValidateEntryLabel(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("label cannot be empty")
	}

	if utf8.RuneCountInString(label) > MaxEntryLabelLength {
		return fmt.Errorf("label cannot exceed %d characters", MaxEntryLabelLength)
	}

	return nil
}

// ValidateEntryWeight проверяет вес сектора
func ValidateEntryWeight(weight int) error {
	if weight < MinEntryWeight {
		return fmt.Errorf("weight must be a positive integer, got %d", weight)
	}
	return nil
}

// ValidateEntries проверяет список секторов; field указывает на первое нарушение
func ValidateEntries(entries []models.Entry) (field string, err error) {
	if len(entries) == 0 {
		return "entries", fmt.Errorf("at least one entry is required")
	}
	if len(entries) > MaxEntries {
		return "entries", fmt.Errorf("cannot have more than %d entries", MaxEntries)
	}

	for i, e := range entries {
		if err := ValidateEntryLabel(e.Label); err != nil {
			return fmt.Sprintf("entries[%d].label", i), err
		}
		if err := ValidateEntryWeight(e.Weight); err != nil {
			return fmt.Sprintf("entries[%d].weight", i), err
		}
	}

	return "", nil
}

// SanitizeString очищает строку от потенциально опасных символов
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")
	return strings.TrimSpace(input)
}
