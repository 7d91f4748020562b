package dataservice

import (
	"context"
	"reflect"
	"testing"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/domain"
)

func loadedMenu(t *testing.T, items ...domain.MenuItem) *MenuService {
	t.Helper()
	remote := &fakeRemote{listFn: listOf(items...)}
	m := NewMenuService(remote, nopLogger{})
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return m
}

func menuItem(id, name, category string, available bool) domain.MenuItem {
	return domain.MenuItem{ID: id, Name: name, Category: category, Available: available}
}

func TestCategories_SortedUniqueWithSentinel(t *testing.T) {
	m := loadedMenu(t,
		menuItem("1", "soup", "main", true),
		menuItem("2", "tea", "beverage", true),
		menuItem("3", "steak", "main", true),
		menuItem("4", "mystery", "", true), // пустая категория не попадает в список
	)

	want := []string{"all", "beverage", "main"}
	if got := m.Categories(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
}

func TestCategories_EmptyCollection(t *testing.T) {
	m := loadedMenu(t)
	want := []string{"all"}
	if got := m.Categories(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
}

func TestFilterByCategory(t *testing.T) {
	m := loadedMenu(t,
		menuItem("1", "soup", "main", true),
		menuItem("2", "tea", "beverage", true),
	)

	if got := m.FilterByCategory("main"); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("FilterByCategory(main) = %+v", got)
	}
	// "all" и пустая строка — вся коллекция
	if got := m.FilterByCategory(AllSentinel); len(got) != 2 {
		t.Fatalf("FilterByCategory(all) = %+v", got)
	}
	if got := m.FilterByCategory(""); len(got) != 2 {
		t.Fatalf("FilterByCategory(\"\") = %+v", got)
	}
	if got := m.FilterByCategory("dessert"); len(got) != 0 {
		t.Fatalf("FilterByCategory(dessert) = %+v", got)
	}
}

func TestSearch_CaseInsensitiveNameAndDescription(t *testing.T) {
	m := loadedMenu(t,
		domain.MenuItem{ID: "1", Name: "Tomato Soup", Description: "classic"},
		domain.MenuItem{ID: "2", Name: "Tea", Description: "with TOMATO jam"},
		domain.MenuItem{ID: "3", Name: "Steak", Description: "medium rare"},
	)

	got := m.Search("toMAto")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("Search(toMAto) = %+v", got)
	}
	if got := m.Search("   "); len(got) != 3 {
		t.Fatalf("blank query must return whole collection, got %+v", got)
	}
	if got := m.Search("sushi"); len(got) != 0 {
		t.Fatalf("Search(sushi) = %+v", got)
	}
}

func TestAvailable(t *testing.T) {
	m := loadedMenu(t,
		menuItem("1", "soup", "main", true),
		menuItem("2", "tea", "beverage", false),
		menuItem("3", "cake", "dessert", true),
	)

	got := m.Available()
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("Available() = %+v", got)
	}
}
