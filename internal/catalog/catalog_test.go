package catalog

import (
	"errors"
	"testing"

	"github.com/san-kum/dynvec/internal/config"
	"github.com/san-kum/dynvec/internal/vector"
)

func TestNewBook_LinksAuthor(t *testing.T) {
	king := NewAuthor("Stephen King", nil)
	it := NewBook(king, "It", 1024)
	NewBook(king, "The Shining", 976)

	if king.Books.Size() != 2 {
		t.Fatalf("expected 2 books, got %d", king.Books.Size())
	}
	first, _ := king.Books.Front()
	if first != it {
		t.Error("expected first book to be It")
	}
	if it.Author != king {
		t.Error("book does not point back to its author")
	}
}

func TestNewBook_NoAuthor(t *testing.T) {
	b := NewBook(nil, "Anonymous Tales", 12)
	if got := b.String(); got != "Anonymous Tales, Unknown, 12" {
		t.Errorf("expected unknown author, got %q", got)
	}
}

func TestNewAuthor_CopiesBooks(t *testing.T) {
	orphan := &Book{Title: "Draft", Pages: 3}
	books := vector.Of(orphan)

	a := NewAuthor("Someone", books)
	NewBook(a, "Second", 10)

	if books.Size() != 1 {
		t.Errorf("caller's list changed size to %d", books.Size())
	}
	if a.Books.Size() != 2 {
		t.Errorf("expected 2 books, got %d", a.Books.Size())
	}
}

func TestAuthorString(t *testing.T) {
	king := NewAuthorOf("Stephen King")
	NewBook(king, "It", 1024)
	NewBook(king, "The Shining", 976)
	NewBook(king, "Cujo", 450)

	want := "Stephen King\n" +
		" - It, Stephen King, 1024\n" +
		" - The Shining, Stephen King, 976\n" +
		" - Cujo, Stephen King, 450"
	if got := king.String(); got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
	if king.TotalPages() != 2450 {
		t.Errorf("expected 2450 pages, got %d", king.TotalPages())
	}

	empty := NewAuthorOf("Nobody")
	if got := empty.String(); got != "Nobody\n" {
		t.Errorf("expected name only, got %q", got)
	}
}

func TestFromConfig(t *testing.T) {
	c := FromConfig(config.DefaultConfig().Catalog)

	if c.Authors.Size() != 2 {
		t.Fatalf("expected 2 authors, got %d", c.Authors.Size())
	}
	if c.BookCount() != 4 {
		t.Errorf("expected 4 books, got %d", c.BookCount())
	}

	tolkien, err := c.Find("j.r.r. tolkien")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	b, _ := tolkien.Books.At(0)
	if b.Pages != 512 {
		t.Errorf("expected 512 pages, got %d", b.Pages)
	}
}

func TestFind_NotFound(t *testing.T) {
	c := New()
	c.Add(NewAuthorOf("Ann"))
	if _, err := c.Find("Bob"); !errors.Is(err, ErrAuthorNotFound) {
		t.Errorf("expected ErrAuthorNotFound, got %v", err)
	}
}

func TestCatalogString(t *testing.T) {
	c := New()
	a := NewAuthorOf("A")
	NewBook(a, "One", 1)
	c.Add(a)
	c.Add(NewAuthorOf("B"))

	want := "A\n - One, A, 1\nB\n"
	if got := c.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
