package hotel_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-hotel-admin/apiclient"
	"github.com/jrsteele09/go-hotel-admin/hotel"
	"github.com/jrsteele09/go-hotel-admin/internal/errors"
	"github.com/jrsteele09/go-hotel-admin/internal/fakeapi"
	"github.com/jrsteele09/go-hotel-admin/internal/utils"
	"github.com/jrsteele09/go-hotel-admin/session"
	sessionrepofake "github.com/jrsteele09/go-hotel-admin/session/repofake"
)

const (
	testEmail    = "admin@example.com"
	testPassword = "password123"
)

type testFixture struct {
	server   *fakeapi.Server
	store    *sessionrepofake.FakeSessionStore
	services *hotel.Services
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	srv := fakeapi.New(t)
	store := sessionrepofake.NewFakeSessionStore()
	client, err := apiclient.New(srv.URL, store, apiclient.WithRedirectDelay(time.Millisecond))
	require.NoError(t, err)

	srv.Public(http.MethodPost, hotel.PathLogin, func(w http.ResponseWriter, r *http.Request) {
		var req hotel.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EmailOrPhone != testEmail || req.Password != testPassword {
			fakeapi.WriteJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		access, refresh := srv.IssueTokens()
		fakeapi.WriteJSON(w, http.StatusOK, hotel.LoginResponse{AccessToken: access, RefreshToken: refresh})
	})

	return &testFixture{
		server:   srv,
		store:    store,
		services: hotel.New(client),
	}
}

func (f *testFixture) login(t *testing.T) {
	t.Helper()
	_, err := f.services.Auth.Login(context.Background(), hotel.LoginRequest{EmailOrPhone: testEmail, Password: testPassword})
	require.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	t.Run("stores tokens", func(t *testing.T) {
		f := setupTestFixture(t)
		require.False(t, f.services.Auth.IsLoggedIn())

		resp, err := f.services.Auth.Login(context.Background(), hotel.LoginRequest{EmailOrPhone: testEmail, Password: testPassword})
		require.NoError(t, err)

		tokens, err := f.store.GetTokens()
		require.NoError(t, err)
		require.Equal(t, resp.AccessToken, tokens.AccessToken)
		require.Equal(t, resp.RefreshToken, tokens.RefreshToken)
		require.True(t, f.services.Auth.IsLoggedIn())
		require.Empty(t, f.server.RequestsTo(hotel.PathLogin)[0].Authorization)
	})

	t.Run("bad credentials", func(t *testing.T) {
		f := setupTestFixture(t)
		_, err := f.services.Auth.Login(context.Background(), hotel.LoginRequest{EmailOrPhone: testEmail, Password: "wrong"})
		require.Error(t, err)
		require.Equal(t, http.StatusUnauthorized, apiclient.StatusCode(err))
		require.Equal(t, 0, f.server.RefreshCalls())
		require.Equal(t, 0, f.store.Writes())
	})

	t.Run("missing fields", func(t *testing.T) {
		f := setupTestFixture(t)
		_, err := f.services.Auth.Login(context.Background(), hotel.LoginRequest{})
		require.True(t, errors.Is(err, errors.ErrInvalidRequest))
		require.Empty(t, f.server.Requests())
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("clears even when the server fails", func(t *testing.T) {
		f := setupTestFixture(t)
		f.login(t)
		f.server.Protected(http.MethodPost, hotel.PathLogout, fakeapi.JSON(http.StatusInternalServerError, map[string]string{"message": "boom"}))

		err := f.services.Auth.Logout(context.Background())
		require.Error(t, err)
		_, err = f.store.GetTokens()
		require.True(t, errors.Is(err, errors.ErrSessionNotFound))
	})

	t.Run("success", func(t *testing.T) {
		f := setupTestFixture(t)
		f.login(t)
		f.server.Protected(http.MethodPost, hotel.PathLogout, fakeapi.JSON(http.StatusOK, map[string]bool{"ok": true}))

		require.NoError(t, f.services.Auth.Logout(context.Background()))
		require.False(t, f.services.Auth.IsLoggedIn())
	})
}

func TestAuthService_ProfileAfterRefresh(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	tokens, err := f.store.GetTokens()
	require.NoError(t, err)
	f.server.ExpireAccess(tokens.AccessToken)
	f.server.Protected(http.MethodGet, hotel.PathProfile, fakeapi.JSON(http.StatusOK, hotel.User{ID: "u1", Email: testEmail, Role: "ADMIN"}))

	user, err := f.services.Auth.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, testEmail, user.Email)
	require.Equal(t, 1, f.server.RefreshCalls())
}

func TestBranchService(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	ctx := context.Background()

	f.server.Protected(http.MethodGet, hotel.PathBranches, fakeapi.JSON(http.StatusOK, hotel.Page[hotel.Branch]{
		Data: []hotel.Branch{{ID: "b1", Name: "Riverside"}},
		Meta: hotel.PageMeta{Page: 2, PageSize: 10, Total: 11},
	}))
	f.server.Public(http.MethodGet, hotel.PathBranches+"/{id}", fakeapi.JSON(http.StatusOK, hotel.BranchDetail{Branch: hotel.Branch{ID: "b1", Slug: "riverside"}}))
	f.server.Protected(http.MethodPatch, hotel.PathBranches+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		fakeapi.WriteJSON(w, http.StatusOK, hotel.Branch{ID: chi.URLParam(r, "id"), Name: req["name"].(string)})
	})
	f.server.Protected(http.MethodPost, hotel.PathBranches+"/{id}/restore", fakeapi.JSON(http.StatusOK, nil))

	t.Run("list encodes filters and sort", func(t *testing.T) {
		page, err := f.services.Branches.List(ctx, hotel.ListQuery{
			Paging:  hotel.Paging{Page: 2, PageSize: 10},
			Search:  "river",
			Filters: map[string]any{"provinceId": "p1"},
			Sort:    []hotel.Sort{{OrderBy: "name"}},
		})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		require.Equal(t, 11, page.Meta.Total)

		q, err := url.ParseQuery(f.server.RequestsTo(hotel.PathBranches)[0].Query)
		require.NoError(t, err)
		require.Equal(t, "2", q.Get("page"))
		require.Equal(t, "10", q.Get("pageSize"))
		require.JSONEq(t, `{"provinceId":"p1","search":"river"}`, q.Get("filters"))
		require.JSONEq(t, `[{"orderBy":"name","order":"asc"}]`, q.Get("sort"))
	})

	t.Run("get is public", func(t *testing.T) {
		b, err := f.services.Branches.Get(ctx, "riverside")
		require.NoError(t, err)
		require.Equal(t, "riverside", b.Slug)
		require.Empty(t, f.server.RequestsTo(hotel.PathBranches + "/riverside")[0].Authorization)
	})

	t.Run("update sends only set fields", func(t *testing.T) {
		b, err := f.services.Branches.Update(ctx, "b1", hotel.UpdateBranchRequest{Name: utils.Ptr("Hillside")})
		require.NoError(t, err)
		require.Equal(t, "Hillside", b.Name)
		require.JSONEq(t, `{"name":"Hillside"}`, string(f.server.RequestsTo(hotel.PathBranches + "/b1")[0].Body))
	})

	t.Run("restore", func(t *testing.T) {
		require.NoError(t, f.services.Branches.Restore(ctx, "b1"))
		require.Equal(t, http.MethodPost, f.server.RequestsTo(hotel.PathBranches + "/b1/restore")[0].Method)
	})
}

func TestRoomService_Deleted(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	ctx := context.Background()
	f.server.Protected(http.MethodGet, hotel.PathRooms+"/deleted", fakeapi.JSON(http.StatusOK, []hotel.Room{{ID: "r1"}, {ID: "r2"}}))
	f.server.Protected(http.MethodPost, hotel.PathRooms+"/permanent-delete", fakeapi.JSON(http.StatusOK, nil))

	t.Run("list deleted", func(t *testing.T) {
		rooms, err := f.services.Rooms.ListDeleted(ctx)
		require.NoError(t, err)
		require.Len(t, rooms, 2)
	})

	t.Run("permanent delete", func(t *testing.T) {
		require.NoError(t, f.services.Rooms.PermanentDelete(ctx, "r1", "r2"))
		reqs := f.server.RequestsTo(hotel.PathRooms + "/permanent-delete")
		require.Len(t, reqs, 1)
		require.Equal(t, http.MethodPost, reqs[0].Method)
		require.JSONEq(t, `{"ids":["r1","r2"]}`, string(reqs[0].Body))
	})

	t.Run("permanent delete needs ids", func(t *testing.T) {
		err := f.services.Rooms.PermanentDelete(ctx)
		require.True(t, errors.Is(err, errors.ErrInvalidRequest))
	})
}

func TestRoomDetailService(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	ctx := context.Background()
	f.server.Public(http.MethodGet, hotel.PathRoomTypes, fakeapi.JSON(http.StatusOK, hotel.Page[hotel.RoomDetail]{
		Data: []hotel.RoomDetail{{ID: "d1", Name: "Deluxe"}},
	}))
	f.server.Protected(http.MethodPost, hotel.PathRoomTypes, fakeapi.JSON(http.StatusCreated, hotel.RoomDetail{ID: "d2", Name: "Suite"}))
	f.server.Protected(http.MethodPatch, hotel.PathRoomTypes+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		fakeapi.WriteJSON(w, http.StatusOK, hotel.RoomDetail{ID: chi.URLParam(r, "id"), Name: "Suite XL"})
	})

	t.Run("list is public and filtered by branch", func(t *testing.T) {
		page, err := f.services.RoomTypes.List(ctx, hotel.ListQuery{
			Paging:  hotel.Paging{Page: 1, PageSize: 100},
			Filters: map[string]any{"branchSlug": "riverside"},
		})
		require.NoError(t, err)
		require.Equal(t, "Deluxe", page.Data[0].Name)

		req := f.server.RequestsTo(hotel.PathRoomTypes)[0]
		require.Empty(t, req.Authorization)
		q, err := url.ParseQuery(req.Query)
		require.NoError(t, err)
		require.JSONEq(t, `{"branchSlug":"riverside"}`, q.Get("filters"))
	})

	t.Run("create", func(t *testing.T) {
		d, err := f.services.RoomTypes.Create(ctx, hotel.RoomDetailRequest{
			BranchID:  "b1",
			Name:      "Suite",
			MaxAdults: utils.Ptr(2),
		})
		require.NoError(t, err)
		require.Equal(t, "d2", d.ID)

		reqs := f.server.RequestsTo(hotel.PathRoomTypes)
		create := reqs[len(reqs)-1]
		require.Equal(t, http.MethodPost, create.Method)
		require.NotEmpty(t, create.Authorization)
		require.JSONEq(t, `{"branchId":"b1","name":"Suite","max_adults":2}`, string(create.Body))
	})

	t.Run("update", func(t *testing.T) {
		d, err := f.services.RoomTypes.Update(ctx, "d2", hotel.RoomDetailRequest{Name: "Suite XL"})
		require.NoError(t, err)
		require.Equal(t, "Suite XL", d.Name)
		require.Equal(t, http.MethodPatch, f.server.RequestsTo(hotel.PathRoomTypes + "/d2")[0].Method)
	})
}

func TestRoomPriceHistoryService(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	ctx := context.Background()
	f.server.Protected(http.MethodGet, hotel.PathPrices+"/room-detail/{id}", func(w http.ResponseWriter, r *http.Request) {
		fakeapi.WriteJSON(w, http.StatusOK, []hotel.RoomPriceHistory{{ID: "p1", RoomDetailID: chi.URLParam(r, "id")}})
	})
	release := make(chan struct{})
	f.server.Protected(http.MethodPost, hotel.PathPrices, func(w http.ResponseWriter, r *http.Request) {
		<-release
		var req hotel.RoomPriceHistoryRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		fakeapi.WriteJSON(w, http.StatusCreated, hotel.RoomPriceHistory{ID: "new", Name: req.Name, RoomDetailID: req.RoomDetailID})
	})
	f.server.Protected(http.MethodPatch, hotel.PathPrices+"/{id}", fakeapi.JSON(http.StatusOK, hotel.RoomPriceHistory{ID: "p1", Name: "Tet"}))
	f.server.Protected(http.MethodDelete, hotel.PathPrices+"/{id}", fakeapi.JSON(http.StatusOK, nil))

	t.Run("list by room type", func(t *testing.T) {
		prices, err := f.services.Prices.ListByRoomDetail(ctx, "d1")
		require.NoError(t, err)
		require.Equal(t, "d1", prices[0].RoomDetailID)
	})

	t.Run("concurrent creates all land", func(t *testing.T) {
		names := []string{"Tet", "Summer"}
		created := make([]*hotel.RoomPriceHistory, len(names))
		errs := make([]error, len(names))
		var wg sync.WaitGroup
		for i, name := range names {
			wg.Add(1)
			go func(i int, name string) {
				defer wg.Done()
				created[i], errs[i] = f.services.Prices.Create(ctx, hotel.RoomPriceHistoryRequest{
					RoomDetailID:  "d1",
					Name:          name,
					EffectiveFrom: "2026-02-01",
					PricePerNight: "1500000",
				})
			}(i, name)
		}
		require.Eventually(t, func() bool { return len(f.server.RequestsTo(hotel.PathPrices)) == 2 }, 2*time.Second, 5*time.Millisecond)
		close(release)
		wg.Wait()

		for i := range names {
			require.NoError(t, errs[i])
			require.Equal(t, names[i], created[i].Name)
		}
		var body map[string]any
		require.NoError(t, json.Unmarshal(f.server.RequestsTo(hotel.PathPrices)[0].Body, &body))
		require.NotContains(t, body, "price_per_hour")
		require.Equal(t, "1500000", body["price_per_night"])
	})

	t.Run("update and delete", func(t *testing.T) {
		p, err := f.services.Prices.Update(ctx, "p1", hotel.RoomPriceHistoryRequest{Name: "Tet"})
		require.NoError(t, err)
		require.Equal(t, "Tet", p.Name)
		require.NoError(t, f.services.Prices.Delete(ctx, "p1"))

		reqs := f.server.RequestsTo(hotel.PathPrices + "/p1")
		require.Len(t, reqs, 2)
		require.Equal(t, http.MethodPatch, reqs[0].Method)
		require.Equal(t, http.MethodDelete, reqs[1].Method)
	})
}

func TestImageService_Upload(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	f.server.Protected(http.MethodPost, hotel.PathImages, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		out := []hotel.Image{}
		for _, fh := range r.MultipartForm.File["images"] {
			out = append(out, hotel.Image{PublicID: fh.Filename, URL: "https://cdn.example.com/" + fh.Filename})
		}
		fakeapi.WriteJSON(w, http.StatusCreated, out)
	})

	t.Run("uploads all files", func(t *testing.T) {
		images, err := f.services.Images.Upload(context.Background(),
			hotel.ImageFile{Name: "lobby.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}},
			hotel.ImageFile{Name: "pool.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}},
		)
		require.NoError(t, err)
		require.Len(t, images, 2)
		require.Equal(t, "pool.jpg", images[1].PublicID)
	})

	t.Run("nothing to upload", func(t *testing.T) {
		_, err := f.services.Images.Upload(context.Background())
		require.True(t, errors.Is(err, errors.ErrInvalidRequest))
	})
}

func TestUserService_BlockOrUnblock(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	f.server.Protected(http.MethodPost, hotel.PathUsers+"/block-action/{id}", fakeapi.JSON(http.StatusOK, nil))

	err := f.services.Users.BlockOrUnblock(context.Background(), "u1", hotel.BlockUserRequest{Action: hotel.ActionBlock, Reason: "spam"})
	require.NoError(t, err)
	require.JSONEq(t, `{"action":"BLOCK","reason":"spam"}`, string(f.server.RequestsTo(hotel.PathUsers + "/block-action/u1")[0].Body))
}

func TestBookingService_UpdateStatus(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	f.server.Protected(http.MethodPatch, hotel.PathBookings+"/update-status/{id}", fakeapi.JSON(http.StatusOK, hotel.Booking{ID: "bk1", Status: hotel.BookingCheckedIn}))

	b, err := f.services.Bookings.UpdateStatus(context.Background(), "bk1", hotel.UpdateBookingStatusRequest{Status: hotel.BookingCheckedIn})
	require.NoError(t, err)
	require.Equal(t, hotel.BookingCheckedIn, b.Status)
}

func TestAnalyticsService(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	f.server.Protected(http.MethodGet, hotel.PathAnalytics+"/summary", fakeapi.JSON(http.StatusOK, hotel.AnalyticsSummary{TotalBookings: 42}))
	f.server.Protected(http.MethodGet, hotel.PathAnalytics+"/room-performance", fakeapi.JSON(http.StatusOK, []hotel.RoomPerformance{{RoomID: "r1"}}))

	q := hotel.AnalyticsQuery{
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		BranchID:  "b1",
	}

	summary, err := f.services.Analytics.Summary(context.Background(), q)
	require.NoError(t, err)
	require.Equal(t, 42, summary.TotalBookings)
	require.Equal(t, "branchId=b1&endDate=2026-01-31&startDate=2026-01-01", f.server.RequestsTo(hotel.PathAnalytics + "/summary")[0].Query)

	perf, err := f.services.Analytics.RoomPerformance(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, perf, 1)
}

func TestServices_UseInjectedStore(t *testing.T) {
	store := sessionrepofake.NewFakeSessionStoreWith("a", "r")
	client, err := apiclient.New("http://localhost:1", store)
	require.NoError(t, err)

	var s session.Store = client.Store()
	require.Same(t, store, s)
}
