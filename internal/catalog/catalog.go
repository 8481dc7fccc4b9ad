// Package catalog links authors to the books they wrote.
//
// Each [Author] keeps its books in a [vector.Vector] of pointers; creating a
// [Book] with an author appends the book to that author's list.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/dynvec/internal/config"
	"github.com/san-kum/dynvec/internal/vector"
)

var ErrAuthorNotFound = errors.New("catalog: author not found")

type Book struct {
	Author *Author
	Title  string
	Pages  uint32
}

type Author struct {
	Name  string
	Books *vector.Vector[*Book]
}

// NewAuthor returns an author owning a copy of books. A nil list starts
// the author with no books.
func NewAuthor(name string, books *vector.Vector[*Book]) *Author {
	return &Author{Name: name, Books: books.Clone()}
}

func NewAuthorOf(name string, books ...*Book) *Author {
	return &Author{Name: name, Books: vector.Of(books...)}
}

// NewBook creates a book and, when author is non-nil, appends it to the
// author's list.
func NewBook(author *Author, title string, pages uint32) *Book {
	b := &Book{Author: author, Title: title, Pages: pages}
	if author != nil {
		author.Books.PushBack(b)
	}
	return b
}

func (b *Book) String() string {
	name := "Unknown"
	if b.Author != nil {
		name = b.Author.Name
	}
	return fmt.Sprintf("%s, %s, %d", b.Title, name, b.Pages)
}

func (a *Author) String() string {
	var sb strings.Builder
	sb.WriteString(a.Name)
	sb.WriteByte('\n')
	for i := 0; i < a.Books.Size(); i++ {
		b, err := a.Books.At(i)
		if err != nil {
			break
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(" - ")
		sb.WriteString(b.String())
	}
	return sb.String()
}

// TotalPages sums the page counts of the author's books.
func (a *Author) TotalPages() uint64 {
	var total uint64
	for i := 0; i < a.Books.Size(); i++ {
		total += uint64(a.Books.Get(i).Pages)
	}
	return total
}

type Catalog struct {
	Authors *vector.Vector[*Author]
}

func New() *Catalog {
	return &Catalog{Authors: vector.New[*Author]()}
}

// FromConfig builds a catalog from the configured authors, linking every
// book through NewBook.
func FromConfig(cfg config.CatalogConfig) *Catalog {
	c := &Catalog{Authors: vector.WithCapacity[*Author](len(cfg.Authors))}
	for _, ac := range cfg.Authors {
		a := NewAuthor(ac.Name, nil)
		for _, bc := range ac.Books {
			NewBook(a, bc.Title, bc.Pages)
		}
		c.Add(a)
	}
	return c
}

func (c *Catalog) Add(a *Author) {
	c.Authors.PushBack(a)
}

func (c *Catalog) Find(name string) (*Author, error) {
	for i := 0; i < c.Authors.Size(); i++ {
		a, err := c.Authors.At(i)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(a.Name, name) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrAuthorNotFound, name)
}

func (c *Catalog) BookCount() int {
	n := 0
	for i := 0; i < c.Authors.Size(); i++ {
		n += c.Authors.Get(i).Books.Size()
	}
	return n
}

func (c *Catalog) String() string {
	parts := make([]string, 0, c.Authors.Size())
	for i := 0; i < c.Authors.Size(); i++ {
		parts = append(parts, c.Authors.Get(i).String())
	}
	return strings.Join(parts, "\n")
}
