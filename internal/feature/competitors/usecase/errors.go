package usecase

import "errors"

var (
	// ErrCompetitorNotFound is returned when a company does not exist or belongs to another user.
	ErrCompetitorNotFound = errors.New("competitor not found")

	// ErrPrimaryAlreadyExists is returned when a second company is flagged as the user's own.
	ErrPrimaryAlreadyExists = errors.New("a primary company already exists")

	// ErrInvalidCompetitor wraps field validation failures.
	ErrInvalidCompetitor = errors.New("invalid competitor")

	// ErrInvalidCompanyName is returned when an AI research request names an unusable company.
	ErrInvalidCompanyName = errors.New("invalid company name")

	// ErrEmptyImage is returned when an identify request carries no image bytes.
	ErrEmptyImage = errors.New("image data is empty")

	// ErrImageTooLarge is returned when an image exceeds MaxImageSize.
	ErrImageTooLarge = errors.New("image size exceeds maximum")

	// ErrAIResponse is returned when the AI answer cannot be used.
	ErrAIResponse = errors.New("unusable AI response")
)
