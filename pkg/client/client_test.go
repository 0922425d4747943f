package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"breezehire/pkg/client"
)

func TestFetchAllDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" || r.URL.Path != "/api/v1/products" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"count":2,"data":[
		  {"_id":"4","name":"Silver Mist Fan","category":"Mist Fan","images":[],"rentPrices":{"daily":800}},
		  {"_id":"5","name":"Electric Heater","category":"Electric Heater","images":[]}]}`))
	}))
	defer srv.Close()

	products, err := client.New(srv.URL).FetchAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products", len(products))
	}
	if products[0].ID != "4" || products[0].RentPrices["daily"] != 800 {
		t.Fatalf("first product %+v", products[0])
	}
}

func TestCreateStripsClientAssignedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got client.Product
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		if got.ID != "" {
			t.Errorf("client sent an id: %q", got.ID)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    client.Product{ID: "srv-1", Name: got.Name, Category: got.Category},
		})
	}))
	defer srv.Close()

	created, err := client.New(srv.URL).Create(context.Background(), client.Product{
		ID: "ignore-me", Name: "Tower AC", Category: "Tower AC",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != "srv-1" {
		t.Fatalf("created id %q", created.ID)
	}
}

func TestServerMessageSurfacesAsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"data":null,"message":"product not found"}`))
	}))
	defer srv.Close()

	_, err := client.New(srv.URL).GetByID(context.Background(), "nope")
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != 404 || apiErr.Message != "product not found" {
		t.Fatalf("got %+v", apiErr)
	}
}

// A 200 with success=false is still a failure; some proxies rewrite
// status codes, the envelope is authoritative.
func TestSuccessFalseIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"data":null,"message":"backend degraded"}`))
	}))
	defer srv.Close()

	err := client.New(srv.URL).Delete(context.Background(), "4")
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "backend degraded" {
		t.Fatalf("got %v", err)
	}
}

func TestUpdateRequiresID(t *testing.T) {
	if _, err := client.New("http://unused").Update(context.Background(), "", client.Product{}); err == nil {
		t.Fatal("update without id accepted")
	}
}
