package log

type Action = string

const (
	GetAllAuthors    Action = "GetAllAuthors"
	GetAuthor               = "GetAuthor"
	CreateAuthor            = "CreateAuthor"
	UpdateAuthor            = "UpdateAuthor"
	DeleteAuthor            = "DeleteAuthor"
	GetAllBooks             = "GetAllBooks"
	GetBook                 = "GetBook"
	CreateBook              = "CreateBook"
	UpdateBook              = "UpdateBook"
	DeleteBook              = "DeleteBook"
	GetAuthorBooks          = "GetAuthorBooks"
	GetBookAuthor           = "GetBookAuthor"
	CountAuthorBooks        = "CountAuthorBooks"
	SearchBooks             = "SearchBooks"
	SeedCatalog             = "SeedCatalog"
	Health                  = "Health"
)
