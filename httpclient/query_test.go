package httpclient

import (
	"testing"
)

type sortDir string

type listParams struct {
	Search   string   `json:"search,omitempty"`
	Status   *string  `json:"status,omitempty"`
	Archived *bool    `json:"is_archived,omitempty"`
	Page     int      `json:"page,omitempty"`
	PageSize int      `json:"page_size,omitempty"`
	Types    []string `json:"type,omitempty"`
	SortDir  sortDir  `json:"sort_dir,omitempty"`
	Amount   float64  `json:"amount,omitempty"`
	Extra    Params   `json:"-"`
}

type PageParams struct {
	Page     int `json:"page,omitempty"`
	PageSize int `json:"page_size,omitempty"`
}

type embeddedParams struct {
	PageParams
	ContactID int `json:"contact_id,omitempty"`
}

func TestEncodeQuery(t *testing.T) {
	draft := "draft"
	no := false

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"nil pointer", (*listParams)(nil), ""},
		{"zero struct", listParams{}, ""},
		{
			name: "declaration order",
			in:   &listParams{PageSize: 25, Search: "acme", Page: 2},
			want: "search=acme&page=2&page_size=25",
		},
		{
			name: "pointers keep false",
			in:   listParams{Status: &draft, Archived: &no},
			want: "status=draft&is_archived=false",
		},
		{
			name: "slices join with comma",
			in:   listParams{Types: []string{"sales", "purchases"}},
			want: "type=sales%2Cpurchases",
		},
		{
			name: "named string and float",
			in:   listParams{SortDir: "desc", Amount: 10.5},
			want: "sort_dir=desc&amount=10.5",
		},
		{
			name: "extras after typed fields, sorted, typed wins",
			in: listParams{Search: "x", Extra: Params{
				"zeta":   1,
				"alpha":  true,
				"search": "ignored",
				"nil":    nil,
			}},
			want: "search=x&alpha=true&zeta=1",
		},
		{
			name: "embedded struct",
			in:   embeddedParams{PageParams: PageParams{Page: 1}, ContactID: 9},
			want: "page=1&contact_id=9",
		},
		{
			name: "params map",
			in:   Params{"b": 2, "a": "one"},
			want: "a=one&b=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := EncodeQuery(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := q.Encode(); got != tt.want {
				t.Errorf("EncodeQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeQuery_RejectsScalars(t *testing.T) {
	if _, err := EncodeQuery(42); err == nil {
		t.Fatal("expected error")
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{1, "1"},
		{int64(-3), "-3"},
		{true, "true"},
		{false, "false"},
		{1.25, "1.25"},
		{float64(100), "100"},
		{"plain", "plain"},
		{[]int{1, 2, 3}, "1,2,3"},
		{sortDir("asc"), "asc"},
		{uint8(7), "7"},
	}
	for _, tt := range tests {
		if got := Stringify(tt.in); got != tt.want {
			t.Errorf("Stringify(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuery_Encode_Escapes(t *testing.T) {
	q := Query{}.Add("search", "a&b c").Add("date_from", "2024-01-01")
	if got := q.Encode(); got != "search=a%26b+c&date_from=2024-01-01" {
		t.Errorf("Encode() = %q", got)
	}
	if v, ok := q.Get("date_from"); !ok || v != "2024-01-01" {
		t.Errorf("Get(date_from) = %q, %v", v, ok)
	}
}
