package domain

import (
	"testing"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
)

func TestLimit(t *testing.T) {
	tests := []struct {
		name    string
		limit   *int
		max     int
		want    int
		wantErr bool
	}{
		{"omitted", nil, MaxLimit, DefaultLimit, false},
		{"zero", Int(0), MaxLimit, 0, true},
		{"one", Int(1), MaxLimit, 1, false},
		{"max", Int(500), MaxLimit, 500, false},
		{"over max", Int(501), MaxLimit, 0, true},
		{"key max", Int(5000), MaxKeyLimit, 5000, false},
		{"over key max", Int(5001), MaxKeyLimit, 0, true},
		{"negative", Int(-1), MaxKeyLimit, 0, true},
	}
	for _, tt := range tests {
		got, err := Limit(tt.limit, tt.max)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Limit() error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err != nil && apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("%s: Limit() kind = %s, want validation", tt.name, apperr.KindOf(err))
		}
		if got != tt.want {
			t.Errorf("%s: Limit() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestPaging(t *testing.T) {
	if _, _, err := Paging(Int(10), Int(-2), MaxLimit); err == nil {
		t.Error("Paging() accepted a negative page")
	}
	if _, _, err := Paging(nil, Int(0), MaxLimit); apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("Paging(page 0) error = %v, want validation", err)
	}
	l, p, err := Paging(nil, Int(3), MaxLimit)
	if err != nil || l != DefaultLimit || p != 3 {
		t.Errorf("Paging(nil, 3) = %d, %d, %v", l, p, err)
	}
	l, p, err = Paging(nil, nil, MaxLimit)
	if err != nil || l != DefaultLimit || p != 0 {
		t.Errorf("Paging(nil, nil) = %d, %d, %v", l, p, err)
	}
}

func TestProjectID(t *testing.T) {
	if err := ProjectID("3002780358964f9bab5a92.87762498"); err != nil {
		t.Errorf("ProjectID(valid) error = %v", err)
	}
	if got := apperr.KindOf(ProjectID("")); got != apperr.KindValidation {
		t.Errorf("ProjectID(empty) kind = %s, want validation", got)
	}
	if got := apperr.KindOf(ProjectID("abc/def")); got != apperr.KindInvalidID {
		t.Errorf("ProjectID(slash) kind = %s, want invalid id", got)
	}
}

func TestCountAndIDs(t *testing.T) {
	if err := Count("keys", 0, 1, 1000); err == nil {
		t.Error("Count() accepted an empty batch")
	}
	if err := Count("keys", 1001, 1, 1000); err == nil {
		t.Error("Count() accepted an oversized batch")
	}
	if err := IDs("keyIds", []int64{1, 2, 0}, 1, 1000); err == nil {
		t.Error("IDs() accepted a zero id")
	}
	if err := IDs("keyIds", []int64{1, 2}, 1, 1000); err != nil {
		t.Errorf("IDs() error = %v", err)
	}
}

func TestOneOf(t *testing.T) {
	if err := OneOf("role", "admin", "owner", "admin"); err != nil {
		t.Errorf("OneOf(admin) error = %v", err)
	}
	if err := OneOf("role", "", "owner", "admin"); err != nil {
		t.Errorf("OneOf(empty) error = %v", err)
	}
	if err := OneOf("role", "root", "owner", "admin"); err == nil {
		t.Error("OneOf(root) error = nil")
	}
}

func TestPageOf(t *testing.T) {
	p := PageOf(api.Pagination{TotalCount: 250, PageCount: 3, Page: 1, Limit: 100}, 100)
	if p.Shown != 100 || p.TotalCount != 250 || p.PageCount != 3 || p.Page != 1 {
		t.Errorf("PageOf() = %+v", p)
	}
}

func TestDepsHostnameDefault(t *testing.T) {
	if got := (Deps{}).Hostname(); got != "lokalise.com" {
		t.Errorf("Hostname() = %q, want lokalise.com", got)
	}
}
