package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/mohamedbgr31/luxury-car-rental-sub001/utils"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func buildRequestTestApp(t *testing.T) *iris.Application {
	t.Helper()
	app := iris.New()
	app.Validator = validator.New()

	requests := app.Party("/api/requests")
	{
		requests.Post("/", CreateRentalRequest)
		requests.Post("/quote", QuoteRentalPrice)
	}

	if err := app.Build(); err != nil {
		t.Fatalf("build app: %v", err)
	}
	return app
}

func postJSON(app *iris.Application, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestCreateRentalRequestMissingFields(t *testing.T) {
	app := buildRequestTestApp(t)

	// Validation rejects the body before any storage access
	resp := postJSON(app, "/api/requests", `{"name":"Ali"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing required fields, got %d", resp.Code)
	}
	if body := resp.Body.String(); !strings.Contains(body, "errors") {
		t.Errorf("expected enumerated field errors in the problem body, got %s", body)
	}
}

func TestCreateRentalRequestBadDates(t *testing.T) {
	app := buildRequestTestApp(t)

	base := `{"name":"Ali","contact":"+971501234567","carID":1,"rentalType":"daily","totalPrice":"AED 1,200","totalDays":1,`

	resp := postJSON(app, "/api/requests", base+`"dateFrom":"10-06-2024","dateTo":"2024-06-12"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed dateFrom, got %d", resp.Code)
	}

	resp2 := postJSON(app, "/api/requests", base+`"dateFrom":"2024-06-15","dateTo":"2024-06-12"}`)
	if resp2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for reversed date order, got %d", resp2.Code)
	}
}

// buildOwnerTestApp wires the requests party the way main.go does: the token
// verifier runs only when an Authorization header is present, and the handler
// reads the owner through requestOwner.
func buildOwnerTestApp(t *testing.T) *iris.Application {
	t.Helper()
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")

	app := iris.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	requests := app.Party("/api/requests", utils.OptionalTokenVerifier(accessTokenVerifierMiddleware))
	requests.Post("/owner", func(ctx iris.Context) {
		if id := requestOwner(ctx); id != nil {
			ctx.JSON(iris.Map{"userID": *id})
			return
		}
		ctx.JSON(iris.Map{"userID": 0})
	})

	if err := app.Build(); err != nil {
		t.Fatalf("build app: %v", err)
	}
	return app
}

func TestRequestOwnerFromOptionalToken(t *testing.T) {
	app := buildOwnerTestApp(t)

	// Anonymous submissions pass through with no owner
	req := httptest.NewRequest(http.MethodPost, "/api/requests/owner", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("anonymous submission must reach the handler, got %d", resp.Code)
	}
	if body := resp.Body.String(); !strings.Contains(body, `"userID":0`) {
		t.Errorf("anonymous submission must carry no owner, got %s", body)
	}

	// A valid token attaches the signing user
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, err := signer.Sign(utils.AccessToken{ID: 42, Role: "user"})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	req2 := httptest.NewRequest(http.MethodPost, "/api/requests/owner", nil)
	req2.Header.Set("Authorization", "Bearer "+string(token))
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusOK {
		t.Fatalf("authenticated submission must reach the handler, got %d", resp2.Code)
	}
	if body := resp2.Body.String(); !strings.Contains(body, `"userID":42`) {
		t.Errorf("authenticated submission must carry the token's user id, got %s", body)
	}

	// A token that is present but bogus is still rejected
	req3 := httptest.NewRequest(http.MethodPost, "/api/requests/owner", nil)
	req3.Header.Set("Authorization", "Bearer not-a-token")
	resp3 := httptest.NewRecorder()
	app.ServeHTTP(resp3, req3)
	if resp3.Code == http.StatusOK {
		t.Errorf("invalid token must not pass, got %d", resp3.Code)
	}
}

func TestQuoteRejectsBadInput(t *testing.T) {
	app := buildRequestTestApp(t)

	resp := postJSON(app, "/api/requests/quote", `{"carID":1,"dateFrom":"2024-06-10","dateTo":"2024-06-12","rentalType":"hourly"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown rental type, got %d", resp.Code)
	}

	resp2 := postJSON(app, "/api/requests/quote", `{"carID":1,"dateFrom":"2024-06-15","dateTo":"2024-06-12","rentalType":"daily"}`)
	if resp2.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for reversed date order, got %d", resp2.Code)
	}
}
