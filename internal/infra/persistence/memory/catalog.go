package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"bookrack/internal/domain/entity"
	"bookrack/internal/domain/repository"
)

// Catalog holds the book collection and its per-book review maps. One lock
// guards the whole collection; review upsert and delete are check-then-write
// sections under it.
type Catalog struct {
	mu    sync.RWMutex
	books map[string]*entity.Book
}

// NewCatalog builds a catalog pre-populated with the seed collection.
func NewCatalog() repository.Catalog {
	return NewCatalogWithBooks(seedBooks())
}

// NewCatalogWithBooks builds a catalog from an explicit book list.
func NewCatalogWithBooks(books []*entity.Book) repository.Catalog {
	byISBN := make(map[string]*entity.Book, len(books))
	for _, book := range books {
		stored := *book
		if stored.Reviews == nil {
			stored.Reviews = make(map[string]string)
		}
		byISBN[stored.ISBN] = &stored
	}

	return &Catalog{books: byISBN}
}

// All returns every book, ordered by ISBN for stable output.
func (c *Catalog) All(_ context.Context) ([]*entity.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	books := make([]*entity.Book, 0, len(c.books))
	for _, book := range c.books {
		books = append(books, copyBook(book))
	}
	sort.Slice(books, func(i, j int) bool {
		if len(books[i].ISBN) != len(books[j].ISBN) {
			return len(books[i].ISBN) < len(books[j].ISBN)
		}

		return books[i].ISBN < books[j].ISBN
	})

	return books, nil
}

// FindByISBN retrieves a single book by its exact ISBN.
func (c *Catalog) FindByISBN(_ context.Context, isbn string) (*entity.Book, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	book, ok := c.books[isbn]
	if !ok {
		return nil, repository.ErrBookNotFound
	}

	return copyBook(book), nil
}

// FindByAuthor returns books whose author matches name, ignoring case.
func (c *Catalog) FindByAuthor(ctx context.Context, name string) ([]*entity.Book, error) {
	return c.filter(ctx, func(book *entity.Book) bool {
		return strings.EqualFold(book.Author, name)
	})
}

// FindByTitle returns books whose title contains substr, ignoring case.
func (c *Catalog) FindByTitle(ctx context.Context, substr string) ([]*entity.Book, error) {
	needle := strings.ToLower(substr)

	return c.filter(ctx, func(book *entity.Book) bool {
		return strings.Contains(strings.ToLower(book.Title), needle)
	})
}

// UpsertReview writes username's review on the book, reporting whether it
// was created or replaced.
func (c *Catalog) UpsertReview(_ context.Context, isbn, username, text string) (entity.ReviewOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	book, ok := c.books[isbn]
	if !ok {
		return entity.ReviewCreated, repository.ErrBookNotFound
	}

	outcome := entity.ReviewCreated
	if _, exists := book.Reviews[username]; exists {
		outcome = entity.ReviewModified
	}
	book.Reviews[username] = text

	return outcome, nil
}

// DeleteReview removes username's review from the book. Book existence is
// checked first; both absences surface as not-found to the caller.
func (c *Catalog) DeleteReview(_ context.Context, isbn, username string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	book, ok := c.books[isbn]
	if !ok {
		return repository.ErrBookNotFound
	}

	if _, exists := book.Reviews[username]; !exists {
		return repository.ErrReviewNotFound
	}
	delete(book.Reviews, username)

	return nil
}

func (c *Catalog) filter(ctx context.Context, keep func(*entity.Book) bool) ([]*entity.Book, error) {
	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entity.Book, 0, len(all))
	for _, book := range all {
		if keep(book) {
			matched = append(matched, book)
		}
	}

	return matched, nil
}

// copyBook returns a deep copy so callers never alias the guarded maps.
func copyBook(book *entity.Book) *entity.Book {
	reviews := make(map[string]string, len(book.Reviews))
	for user, text := range book.Reviews {
		reviews[user] = text
	}

	return &entity.Book{
		ISBN:    book.ISBN,
		Title:   book.Title,
		Author:  book.Author,
		Reviews: reviews,
	}
}

// seedBooks is the boot-time collection.
func seedBooks() []*entity.Book {
	return []*entity.Book{
		{ISBN: "1", Title: "Things Fall Apart", Author: "Chinua Achebe"},
		{ISBN: "2", Title: "Fairy tales", Author: "Hans Christian Andersen"},
		{ISBN: "3", Title: "The Divine Comedy", Author: "Dante Alighieri"},
		{ISBN: "4", Title: "The Epic Of Gilgamesh", Author: "Unknown"},
		{ISBN: "5", Title: "The Book Of Job", Author: "Unknown"},
		{ISBN: "6", Title: "One Thousand and One Nights", Author: "Unknown"},
		{ISBN: "7", Title: "Njal's Saga", Author: "Unknown"},
		{ISBN: "8", Title: "Pride and Prejudice", Author: "Jane Austen"},
		{ISBN: "9", Title: "Wuthering Heights", Author: "Emily Bronte"},
		{ISBN: "10", Title: "The Brothers Karamazov", Author: "Fyodor Dostoevsky"},
	}
}
