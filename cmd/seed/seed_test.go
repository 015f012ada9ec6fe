package main

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubSeeder struct {
	name string
}

func (s stubSeeder) Name() string                               { return s.name }
func (s stubSeeder) Description() string                        { return "stub " + s.name }
func (s stubSeeder) Seed(ctx context.Context, tx *sql.Tx) error { return nil }

func TestRegistry_Order(t *testing.T) {
	r := newRegistry(stubSeeder{"categories"}, stubSeeder{"products"})

	var got []string
	for _, s := range r.list() {
		got = append(got, s.Name())
	}

	want := []string{"categories", "products"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("list() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, r.names()); diff != "" {
		t.Errorf("names() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RunUnknownSeeder(t *testing.T) {
	r := newRegistry(stubSeeder{"categories"})

	err := r.run(context.Background(), nil, "profiles")
	if err == nil || !strings.Contains(err.Error(), "seeder not found: profiles") {
		t.Errorf("run() error = %v, want seeder not found", err)
	}
}

func TestListCommand(t *testing.T) {
	root := newRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"list"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	want := "Available seeders:\n" +
		"  - categories: Seeds product categories\n" +
		"  - products: Seeds products and their category associations\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"list", "categories", "products", "all"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}

	for _, flag := range []string{"dsn", "file", "migrate"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s not registered", flag)
		}
	}
}

func TestResolveDSN(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvDatabaseDSN, "postgres://env/db")

		got, err := resolveDSN("postgres://flag/db")
		if err != nil {
			t.Fatalf("resolveDSN() failed: %v", err)
		}
		if got != "postgres://flag/db" {
			t.Errorf("resolveDSN() = %q, want flag value", got)
		}
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(EnvDatabaseDSN, "postgres://env/db")

		got, err := resolveDSN("")
		if err != nil {
			t.Fatalf("resolveDSN() failed: %v", err)
		}
		if got != "postgres://env/db" {
			t.Errorf("resolveDSN() = %q, want env value", got)
		}
	})
}

func TestCatalogSource_LoadsOnce(t *testing.T) {
	src := &catalogSource{}

	first, err := src.load()
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	second, err := src.load()
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}

	if first != second {
		t.Error("load() parsed the catalog twice")
	}
}
