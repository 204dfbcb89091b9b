package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oldcarhat/model"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserStore struct {
	users   map[string]model.User
	inserts int

	// dupOnInsert simulates a racing first sign-in that is not yet
	// visible to FindByUID but already hit the unique index.
	dupOnInsert bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]model.User{}}
}

func (f *fakeUserStore) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	if user, ok := f.users[uid]; ok {
		return &user, nil
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(ctx context.Context, user model.User) (interface{}, error) {
	if f.dupOnInsert {
		return nil, ErrDuplicateUID
	}
	if _, ok := f.users[user.UID]; ok {
		return nil, ErrDuplicateUID
	}
	user.ID = primitive.NewObjectID()
	f.users[user.UID] = user
	f.inserts++
	return user.ID, nil
}

func (f *fakeUserStore) FindByRole(ctx context.Context, role string) ([]model.User, error) {
	users := []model.User{}
	for _, user := range f.users {
		if user.Role == role {
			users = append(users, user)
		}
	}
	return users, nil
}

func (f *fakeUserStore) Verify(ctx context.Context, id primitive.ObjectID) (int64, int64, error) {
	for uid, user := range f.users {
		if user.ID == id {
			if user.Status == model.StatusVerified {
				return 1, 0, nil
			}
			user.Status = model.StatusVerified
			f.users[uid] = user
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	for uid, user := range f.users {
		if user.ID == id {
			delete(f.users, uid)
			return 1, nil
		}
	}
	return 0, nil
}

func userRouter(store UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/users", func(c *gin.Context) {
		UpsertUser(c, store)
	})
	router.GET("/user/admin/:uid", func(c *gin.Context) {
		ProbeRole(c, store, model.RoleAdmin, "isAdmin")
	})
	router.GET("/user/buyer/:uid", func(c *gin.Context) {
		ProbeRole(c, store, model.RoleBuyer, "isBuyer")
	})
	router.GET("/user/seller/:uid", func(c *gin.Context) {
		ProbeRole(c, store, model.RoleSeller, "isSeller")
	})
	router.GET("/seller-verify/:uid", func(c *gin.Context) {
		ProbeSellerVerified(c, store)
	})
	return router
}

func postUser(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpsertUserIdempotent(t *testing.T) {
	store := newFakeUserStore()
	router := userRouter(store)
	payload := `{"uid":"u1","name":"Ann","email":"ann@example.com","role":"seller"}`

	first := postUser(router, payload)
	if first.Code != http.StatusOK {
		t.Fatalf("first call: expected 200, got %d", first.Code)
	}

	second := postUser(router, payload)
	if second.Code != http.StatusOK {
		t.Fatalf("second call: expected 200, got %d", second.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(second.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["message"] != "User already exists" {
		t.Errorf("second call: expected already-exists message, got %q", body["message"])
	}

	if store.inserts != 1 {
		t.Errorf("expected exactly one insert, got %d", store.inserts)
	}
	if len(store.users) != 1 {
		t.Errorf("expected exactly one record, got %d", len(store.users))
	}
}

func TestUpsertUserRacingDuplicate(t *testing.T) {
	store := newFakeUserStore()
	store.dupOnInsert = true
	router := userRouter(store)

	w := postUser(router, `{"uid":"u1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "User already exists") {
		t.Errorf("expected already-exists message, got %s", w.Body.String())
	}
	if store.inserts != 0 {
		t.Errorf("expected no insert recorded, got %d", store.inserts)
	}
}

func TestUpsertUserDefaultsToBuyer(t *testing.T) {
	store := newFakeUserStore()
	router := userRouter(store)

	if w := postUser(router, `{"uid":"u1","name":"Ann"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := store.users["u1"].Role; got != model.RoleBuyer {
		t.Errorf("expected default role buyer, got %q", got)
	}
}

func TestRoleProbesUnknownUID(t *testing.T) {
	router := userRouter(newFakeUserStore())

	cases := []struct {
		path  string
		field string
	}{
		{"/user/admin/ghost", "isAdmin"},
		{"/user/buyer/ghost", "isBuyer"},
		{"/user/seller/ghost", "isSeller"},
		{"/seller-verify/ghost", "isVerified"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", tc.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", tc.path, w.Code)
			continue
		}
		var body map[string]bool
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Errorf("%s: failed to decode response: %v", tc.path, err)
			continue
		}
		if value, ok := body[tc.field]; !ok || value {
			t.Errorf("%s: expected %s=false, got %v", tc.path, tc.field, body)
		}
	}
}

func TestRoleProbeKnownUID(t *testing.T) {
	store := newFakeUserStore()
	store.users["s1"] = model.User{UID: "s1", Role: model.RoleSeller}
	router := userRouter(store)

	req := httptest.NewRequest("GET", "/user/seller/s1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), `"isSeller":true`) {
		t.Errorf("expected isSeller true, got %s", w.Body.String())
	}

	req = httptest.NewRequest("GET", "/user/admin/s1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), `"isAdmin":false`) {
		t.Errorf("expected isAdmin false, got %s", w.Body.String())
	}
}
