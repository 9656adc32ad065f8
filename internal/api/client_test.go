package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Edem2000/ledgerly/internal/model"
)

func decimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-token")
}

func TestCategories_SendsBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	})

	if _, err := c.Categories(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want Bearer test-token", gotAuth)
	}
}

func TestCategories_Decode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"id":"c1","title":"Groceries","color":"#ff0000","icon":"cart"},
			{"id":"c2","title":"Rent","color":"#00ff00","icon":null}
		]}`))
	})

	cats, err := c.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("len = %d, want 2", len(cats))
	}
	if cats[0].ID != "c1" || cats[0].Title != "Groceries" || cats[0].Icon != "cart" {
		t.Errorf("cats[0] = %+v", cats[0])
	}
	if cats[1].Icon != "" {
		t.Errorf("null icon decoded as %q, want empty", cats[1].Icon)
	}
}

func TestDo_NoTokenGuard(t *testing.T) {
	c := NewClient("http://example.invalid", "")
	if _, err := c.Categories(context.Background()); !errors.Is(err, ErrNoToken) {
		t.Errorf("error = %v, want ErrNoToken", err)
	}
}

func TestDo_ErrorEnvelopeLanguagePreference(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"plain string", `{"success":false,"errorMessage":"bad request","errorCode":7}`, "bad request"},
		{"english first", `{"success":false,"errorMessage":{"en":"Not found","ru":"Не найдено","uz":"Topilmadi"},"errorCode":404}`, "Not found"},
		{"russian fallback", `{"success":false,"errorMessage":{"en":"","ru":"Не найдено","uz":"Topilmadi"},"errorCode":404}`, "Не найдено"},
		{"uzbek fallback", `{"success":false,"errorMessage":{"en":"","ru":"","uz":"Topilmadi"},"errorCode":404}`, "Topilmadi"},
		{"generic fallback", `{"success":false,"errorMessage":{"en":"","ru":"","uz":""},"errorCode":500}`, genericErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Categories(context.Background())
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want *Error", err)
			}
			if apiErr.Message != tt.want {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.want)
			}
		})
	}
}

func TestDo_EnvelopeFailureWithOKStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"errorMessage":"denied","errorCode":13}`))
	})

	_, err := c.Categories(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *Error despite 200 status", err)
	}
	if apiErr.Code != 13 {
		t.Errorf("Code = %d, want 13", apiErr.Code)
	}
}

func TestBudgets_PathCarriesPeriod(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"b1","categoryId":"c1","limitAmount":300}]}`))
	})

	budgets, err := c.Budgets(context.Background(), model.Period{Year: 2025, Month: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/category-budgets?year=2025&month=10" {
		t.Errorf("path = %q", gotPath)
	}
	if len(budgets) != 1 || budgets[0].CategoryID != "c1" {
		t.Fatalf("budgets = %+v", budgets)
	}
	if budgets[0].LimitAmount.String() != "300" {
		t.Errorf("LimitAmount = %s, want 300", budgets[0].LimitAmount)
	}
	if (budgets[0].Period != model.Period{Year: 2025, Month: 10}) {
		t.Errorf("Period = %+v", budgets[0].Period)
	}
}

func TestCreateBudget_SendsBareNumber(t *testing.T) {
	var gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 256)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		_, _ = w.Write([]byte(`{"id":"b1","categoryId":"c1","limitAmount":120.5}`))
	})

	limit, _ := decimalFromString("120.5")
	b, err := c.CreateBudget(context.Background(), "c1", model.Period{Year: 2025, Month: 10}, limit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody != `{"limitAmount":120.5}` {
		t.Errorf("request body = %s", gotBody)
	}
	if b.LimitAmount.String() != "120.5" {
		t.Errorf("LimitAmount = %s", b.LimitAmount)
	}
}

func TestSuggestCategory_Decode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"id":"c9","title":"Coffee","aiSuggested":false,"isNew":false},
			{"id":null,"title":"Coffee Shops","aiSuggested":true,"isNew":true}
		]}`))
	})

	got, err := c.SuggestCategory(context.Background(), "Coffee")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "c9" || got[0].AISuggested {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].ID != "" || !got[1].AISuggested || !got[1].IsNew {
		t.Errorf("got[1] = %+v", got[1])
	}
}

func TestCreateTransaction_AmountIsMagnitude(t *testing.T) {
	var gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 512)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		_, _ = w.Write([]byte(`{"success":true,"transaction":
			{"id":"t1","categoryId":"c1","title":"Metro","type":"expense","amount":12.5,"occurredAt":"2025-10-05T00:00:00Z"}}`))
	})

	amt, _ := decimalFromString("-12.5")
	created, err := c.CreateTransaction(context.Background(), CreateTransactionRequest{
		CategoryID: "c1",
		Title:      "Metro",
		Type:       model.Expense,
		Amount:     amt,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody != `{"categoryId":"c1","title":"Metro","type":"expense","amount":12.5}` {
		t.Errorf("request body = %s", gotBody)
	}
	if created.Type != model.Expense || created.OccurredAt != "2025-10-05T00:00:00Z" {
		t.Errorf("created = %+v", created)
	}
}
