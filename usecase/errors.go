package usecase

import "errors"

var (
	ErrEmptyLabel         = errors.New("label is empty")
	ErrNegativeTime       = errors.New("time must be zero or more minutes")
	ErrTodoNotFound       = errors.New("todo not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrBuiltinCategory    = errors.New("built-in categories cannot be deleted")
	ErrEmptyCategoryName  = errors.New("category name is empty")
	ErrSuggestionClosed   = errors.New("suggestion is not open")
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrMaterialNotFound   = errors.New("material not found")
	ErrEmptyMaterial      = errors.New("material text is empty")
	ErrJourneyNotFound    = errors.New("journey not found")
	ErrJourneyFinished    = errors.New("journey already finished")
)
