package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"studio/config"
	apimiddleware "studio/internal/delivery/api/middleware"
	"studio/internal/delivery/api/router"
	"studio/internal/delivery/api/router/handler"
	"studio/internal/domain/entity"
	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/infra/auth"
	"studio/internal/infra/persistence/memory"
	"studio/internal/infra/persistence/seed"
	"studio/internal/infra/qrcode"
	"studio/internal/infra/storage"
	mockRepo "studio/internal/mocks/repository"
	mockSvc "studio/internal/mocks/service"
	"studio/internal/usecase"
	"studio/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const (
	adminUsername = "studio"
	adminPassword = "correct-horse-battery"
)

type testApp struct {
	echo         *echo.Echo
	contacts     repository.ContactRepository
	bookings     repository.BookingRepository
	testimonials repository.TestimonialRepository
}

type testOptions struct {
	admin    bool
	storage  service.ObjectStorage
	contacts repository.ContactRepository
}

func newTestApp(t *testing.T, opts testOptions) *testApp {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "10MB"
	cfg.Contact.WhatsAppURL = "https://wa.me/94706200613"
	if opts.admin {
		cfg.Admin = &config.AdminConfig{
			Enabled:     true,
			Username:    adminUsername,
			Password:    adminPassword,
			Email:       "studio@example.com",
			TokenSecret: "test-secret",
			TokenTTL:    time.Hour,
			BcryptCost:  4,
		}
	}

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	objectStorage := opts.storage
	if objectStorage == nil {
		bucket := memblob.OpenBucket(nil)
		t.Cleanup(func() { _ = bucket.Close() })
		objectStorage = storage.NewBlobStorage(bucket, "/media", logger)
	}

	contacts := opts.contacts
	if contacts == nil {
		contacts = memory.NewContactRepository()
	}
	services := memory.NewServiceRepository()
	testimonials := memory.NewTestimonialRepository()
	bookings := memory.NewBookingRepository()

	_, err := seed.Seed(ctx, services, testimonials)
	require.NoError(t, err)

	orderUC := impl.NewOrderService(memory.NewOrderRepository(), publisher, logger)
	catalogUC := impl.NewCatalogService(services)
	routerParams := router.RouterParams{
		GalleryHandler: handler.NewGalleryHandler(handler.GalleryHandlerParams{
			GalleryUC: impl.NewGalleryService(impl.GalleryServiceParams{
				GalleryRepo: memory.NewGalleryRepository(),
				Storage:     objectStorage,
				Logger:      logger,
			}),
		}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: catalogUC}),
		ContactHandler: handler.NewContactHandler(handler.ContactHandlerParams{
			ContactUC: impl.NewContactService(impl.ContactServiceParams{
				ContactRepo: contacts,
				QRCode:      qrcode.NewQRCodeService(cfg),
				Publisher:   publisher,
				Config:      cfg,
				Logger:      logger,
			}),
		}),
		TestimonialHandler: handler.NewTestimonialHandler(handler.TestimonialHandlerParams{
			TestimonialUC: impl.NewTestimonialService(testimonials, publisher, logger),
		}),
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: orderUC}),
		BookingHandler: handler.NewBookingHandler(handler.BookingHandlerParams{
			BookingUC: impl.NewBookingService(impl.BookingServiceParams{
				BookingRepo: bookings,
				Storage:     objectStorage,
				Publisher:   publisher,
				Logger:      logger,
			}),
		}),
		MediaHandler: handler.NewMediaHandler(handler.MediaHandlerParams{Storage: objectStorage}),
		Config:       cfg,
	}

	if opts.admin {
		tokenSvc, err := auth.NewJWTService(cfg)
		require.NoError(t, err)

		userUC := impl.NewUserService(impl.UserServiceParams{
			UserRepo:     memory.NewUserRepository(),
			Hasher:       auth.NewBcryptHasher(cfg),
			TokenService: tokenSvc,
			Logger:       logger,
		})
		_, err = userUC.EnsureUser(ctx, &usecase.RegisterUserInput{
			Username: adminUsername,
			Password: adminPassword,
			Email:    cfg.Admin.Email,
		})
		require.NoError(t, err)

		routerParams.AuthHandler = handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: userUC})
		routerParams.AuthMiddleware = apimiddleware.NewAuthMiddleware(tokenSvc)
	}

	return &testApp{
		echo:         NewEcho(cfg, logger, routerParams),
		contacts:     contacts,
		bookings:     bookings,
		testimonials: testimonials,
	}
}

func (a *testApp) do(t *testing.T, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

type errorBody struct {
	Error json.RawMessage `json:"error"`
	Code  string          `json:"code"`
}

type issue struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

func TestHealth(t *testing.T) {
	rec := newTestApp(t, testOptions{}).do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServices_SeededCatalog(t *testing.T) {
	app := newTestApp(t, testOptions{})

	rec := app.do(t, http.MethodGet, "/api/services", "")
	require.Equal(t, http.StatusOK, rec.Code)

	services := decode[[]entity.Service](t, rec)
	require.Len(t, services, 10)

	prices := map[string]int64{}
	for _, s := range services {
		prices[s.Name] = s.Price
	}
	assert.Equal(t, int64(30000), prices["Wedding Full Day"])
	assert.Equal(t, int64(14000), prices["Birthday Photo Shoot - Package 1"])

	rec = app.do(t, http.MethodGet, "/api/services/5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Wedding Full Day", decode[entity.Service](t, rec).Name)
}

func TestLookups_NotFoundAndInvalidID(t *testing.T) {
	app := newTestApp(t, testOptions{})

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantErr  string
	}{
		{name: "missing service", path: "/api/services/999", wantCode: http.StatusNotFound, wantErr: "SERVICE_NOT_FOUND"},
		{name: "missing gallery image", path: "/api/gallery/1", wantCode: http.StatusNotFound, wantErr: "GALLERY_IMAGE_NOT_FOUND"},
		{name: "non numeric id", path: "/api/services/abc", wantCode: http.StatusBadRequest, wantErr: "INVALID_ID"},
		{name: "zero id", path: "/api/gallery/0", wantCode: http.StatusBadRequest, wantErr: "INVALID_ID"},
		{name: "missing media", path: "/media/gallery/nothing.jpg", wantCode: http.StatusNotFound, wantErr: "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decode[errorBody](t, rec)
			assert.Equal(t, tt.wantErr, body.Code)

			var message string
			assert.NoError(t, json.Unmarshal(body.Error, &message))
			assert.NotEmpty(t, message)
		})
	}
}

func TestGallery_EmptyListIsArray(t *testing.T) {
	rec := newTestApp(t, testOptions{}).do(t, http.MethodGet, "/api/gallery?category=wedding", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestOrders_CreateAppliesDefaults(t *testing.T) {
	rec := newTestApp(t, testOptions{}).do(t, http.MethodPost, "/api/orders", `{"service_id":1,"amount":15000}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	order := decode[entity.Order](t, rec)
	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusUnpaid, order.PaymentStatus)
	require.NotNil(t, order.Amount)
	assert.Equal(t, int64(15000), *order.Amount)
}

func TestOrders_InvalidFieldsAreListed(t *testing.T) {
	rec := newTestApp(t, testOptions{}).do(t, http.MethodPost, "/api/orders", `{"service_id":0,"amount":-5}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errorBody](t, rec)

	var issues []issue
	require.NoError(t, json.Unmarshal(body.Error, &issues))
	fields := make([]string, 0, len(issues))
	for _, is := range issues {
		fields = append(fields, is.Field)
	}
	assert.ElementsMatch(t, []string{"service_id", "amount"}, fields)
}

func TestContact_InvalidSubmissionStoresNothing(t *testing.T) {
	app := newTestApp(t, testOptions{})

	rec := app.do(t, http.MethodPost, "/api/contact", `{"name":"A","email":"not-an-email"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errorBody](t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Code)

	var issues []issue
	require.NoError(t, json.Unmarshal(body.Error, &issues))
	fields := make([]string, 0, len(issues))
	for _, is := range issues {
		fields = append(fields, is.Field)
	}
	assert.ElementsMatch(t, []string{"name", "email", "message"}, fields)

	stored, err := app.contacts.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestBind_WrongTypedFieldsAreListed(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantIssues map[string]string
	}{
		{
			name:       "contact fields",
			path:       "/api/contact",
			body:       `{"name":5,"email":7,"message":123}`,
			wantIssues: map[string]string{"name": "type", "email": "type", "message": "type"},
		},
		{
			name:       "message only",
			path:       "/api/contact",
			body:       `{"name":"Ann Perera","email":"ann@example.com","message":123}`,
			wantIssues: map[string]string{"message": "type"},
		},
		{
			name:       "testimonial rating as string",
			path:       "/api/testimonials",
			body:       `{"name":"Ann","quote":"Lovely photos","rating":"5"}`,
			wantIssues: map[string]string{"rating": "type"},
		},
		{
			name:       "order type and rule failures together",
			path:       "/api/orders",
			body:       `{"service_id":"1","amount":-5}`,
			wantIssues: map[string]string{"service_id": "type", "amount": "min"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, testOptions{})

			rec := app.do(t, http.MethodPost, tt.path, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			body := decode[errorBody](t, rec)
			assert.Equal(t, "VALIDATION_FAILED", body.Code)

			var issues []issue
			require.NoError(t, json.Unmarshal(body.Error, &issues))
			got := make(map[string]string, len(issues))
			for _, is := range issues {
				got[is.Field] = is.Code
			}
			assert.Equal(t, tt.wantIssues, got)

			stored, err := app.contacts.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, stored)
		})
	}
}

func TestContact_MalformedJSON(t *testing.T) {
	rec := newTestApp(t, testOptions{}).do(t, http.MethodPost, "/api/contact", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode[errorBody](t, rec).Code)
}

func TestContact_Created(t *testing.T) {
	app := newTestApp(t, testOptions{})

	rec := app.do(t, http.MethodPost, "/api/contact",
		`{"name":"  Nimal Perera ","email":"nimal@example.com","service":"Wedding","message":"Are you free in June?"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	submission := decode[entity.ContactSubmission](t, rec)
	assert.Equal(t, int64(1), submission.ID)
	assert.Equal(t, "Nimal Perera", submission.Name)
	assert.Nil(t, submission.Phone)
	assert.False(t, submission.CreatedAt.IsZero())
}

func TestContact_UnexpectedFailureIsGeneric500(t *testing.T) {
	contacts := mockRepo.NewMockContactRepository(t)
	contacts.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("disk on fire")).Once()

	rec := newTestApp(t, testOptions{contacts: contacts}).do(t, http.MethodPost, "/api/contact",
		`{"name":"Nimal","email":"nimal@example.com","message":"Hello"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error","code":"INTERNAL_ERROR"}`, rec.Body.String())
}

func TestContact_WhatsAppQR(t *testing.T) {
	rec := newTestApp(t, testOptions{}).do(t, http.MethodGet, "/api/contact/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestTestimonials_PublicListIsApprovedOnly(t *testing.T) {
	app := newTestApp(t, testOptions{})

	rec := app.do(t, http.MethodPost, "/api/testimonials",
		`{"name":"Kasun","service":"Event","quote":"Great shots","rating":4,"is_approved":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[entity.Testimonial](t, rec)
	assert.False(t, created.IsApproved)

	rec = app.do(t, http.MethodGet, "/api/testimonials", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode[[]entity.Testimonial](t, rec)
	assert.Len(t, listed, 3)
	for _, tm := range listed {
		assert.True(t, tm.IsApproved)
		assert.NotEqual(t, created.ID, tm.ID)
	}
}

func TestTestimonials_RatingOutOfRange(t *testing.T) {
	rec := newTestApp(t, testOptions{}).do(t, http.MethodPost, "/api/testimonials",
		`{"name":"Kasun","quote":"Great shots","rating":6}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var issues []issue
	require.NoError(t, json.Unmarshal(decode[errorBody](t, rec).Error, &issues))
	require.Len(t, issues, 1)
	assert.Equal(t, "rating", issues[0].Field)
	assert.Equal(t, "max", issues[0].Code)
}

func newBookingForm(t *testing.T, withFile bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fields := map[string]string{
		"name":     "Dilini",
		"email":    "dilini@example.com",
		"phone":    "0771234567",
		"date":     "2026-12-20",
		"time":     "10:00",
		"location": "Kandy",
		"service":  "Wedding Full Day",
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withFile {
		part, err := w.CreateFormFile("confirmation", "bank slip.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-slip"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func (a *testApp) postForm(t *testing.T, path string, body *bytes.Buffer, contentType string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set(echo.HeaderContentType, contentType)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func TestBookings_WithConfirmationIsServedBack(t *testing.T) {
	app := newTestApp(t, testOptions{})
	body, contentType := newBookingForm(t, true)

	rec := app.postForm(t, "/api/bookings", body, contentType)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	booking := decode[entity.Booking](t, rec)
	require.NotNil(t, booking.FileURL)
	assert.True(t, strings.HasPrefix(*booking.FileURL, "/media/confirmations/"))
	assert.True(t, strings.HasSuffix(*booking.FileURL, "_bank_slip.pdf"))

	rec = app.do(t, http.MethodGet, *booking.FileURL, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "%PDF-slip", rec.Body.String())
}

func TestBookings_UploadFailureInsertsNothing(t *testing.T) {
	failing := mockSvc.NewMockObjectStorage(t)
	failing.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("bucket unreachable")).
		Once()

	app := newTestApp(t, testOptions{storage: failing})
	body, contentType := newBookingForm(t, true)

	rec := app.postForm(t, "/api/bookings", body, contentType)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "UPLOAD_FAILED", decode[errorBody](t, rec).Code)

	stored, err := app.bookings.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestBookings_WithoutFile(t *testing.T) {
	app := newTestApp(t, testOptions{})
	body, contentType := newBookingForm(t, false)

	rec := app.postForm(t, "/api/bookings", body, contentType)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, decode[entity.Booking](t, rec).FileURL)
}

func TestAdmin_DisabledByDefault(t *testing.T) {
	app := newTestApp(t, testOptions{})

	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/admin/orders", "").Code)
	assert.Equal(t, http.StatusNotFound,
		app.do(t, http.MethodPost, "/api/auth/login", `{"username":"studio","password":"x"}`).Code)
}

func login(t *testing.T, app *testApp) string {
	t.Helper()

	rec := app.do(t, http.MethodPost, "/api/auth/login",
		`{"username":"`+adminUsername+`","password":"`+adminPassword+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	out := decode[usecase.LoginOutput](t, rec)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, int64(3600), out.ExpiresIn)
	require.NotEmpty(t, out.AccessToken)

	return out.AccessToken
}

func TestAdmin_LoginRejectsBadPassword(t *testing.T) {
	app := newTestApp(t, testOptions{admin: true})

	rec := app.do(t, http.MethodPost, "/api/auth/login", `{"username":"studio","password":"wrong-password"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode[errorBody](t, rec).Code)
}

func TestAdmin_RequiresToken(t *testing.T) {
	app := newTestApp(t, testOptions{admin: true})

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header"},
		{name: "not bearer", header: "Basic c3R1ZGlvOnB3"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers []string
			if tt.header != "" {
				headers = []string{echo.HeaderAuthorization, tt.header}
			}

			rec := app.do(t, http.MethodGet, "/api/admin/orders", "", headers...)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHORIZED", decode[errorBody](t, rec).Code)
		})
	}
}

func TestAdmin_OrderAndModerationFlow(t *testing.T) {
	app := newTestApp(t, testOptions{admin: true})
	token := login(t, app)
	bearer := []string{echo.HeaderAuthorization, "Bearer " + token}

	require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/api/orders", `{"user_id":7,"service_id":2}`).Code)
	require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/api/orders", `{"user_id":8}`).Code)

	rec := app.do(t, http.MethodGet, "/api/admin/orders?user_id=7", "", bearer...)
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decode[[]entity.Order](t, rec)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(1), orders[0].ID)

	rec = app.do(t, http.MethodPatch, "/api/admin/orders/1/status", `{"status":"confirmed"}`, bearer...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirmed", decode[entity.Order](t, rec).Status)

	rec = app.do(t, http.MethodPatch, "/api/admin/orders/42/status", `{"status":"confirmed"}`, bearer...)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/testimonials", `{"name":"Kasun","quote":"Great shots","rating":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	pending := decode[entity.Testimonial](t, rec)

	rec = app.do(t, http.MethodGet, "/api/admin/testimonials", "", bearer...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entity.Testimonial](t, rec), 4)

	rec = app.do(t, http.MethodPatch, "/api/admin/testimonials/"+strconv.FormatInt(pending.ID, 10)+"/approval", `{"is_approved":true}`, bearer...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[entity.Testimonial](t, rec).IsApproved)

	rec = app.do(t, http.MethodGet, "/api/testimonials", "")
	assert.Len(t, decode[[]entity.Testimonial](t, rec), 4)
}

func TestAdmin_CreateServiceAndUploadImage(t *testing.T) {
	app := newTestApp(t, testOptions{admin: true})
	token := login(t, app)
	bearer := []string{echo.HeaderAuthorization, "Bearer " + token}

	rec := app.do(t, http.MethodPost, "/api/admin/services",
		`{"name":"Graduation","price":9000,"details":{"photos":40}}`, bearer...)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[entity.Service](t, rec)
	assert.Equal(t, int64(11), created.ID)
	assert.JSONEq(t, `{"photos":40}`, string(created.Details))

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("category", "wedding"))
	part, err := w.CreateFormFile("file", "first-dance.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rec = app.postForm(t, "/api/admin/gallery", body, w.FormDataContentType(), bearer...)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	image := decode[entity.GalleryImage](t, rec)
	assert.Equal(t, "wedding", image.Category)
	require.NotNil(t, image.Description)
	assert.Equal(t, "first-dance.jpg", *image.Description)

	rec = app.do(t, http.MethodGet, "/api/gallery?category=wedding", "")
	assert.Len(t, decode[[]entity.GalleryImage](t, rec), 1)
	rec = app.do(t, http.MethodGet, "/api/gallery?category=Wedding", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAdmin_GalleryUploadRequiresFile(t *testing.T) {
	app := newTestApp(t, testOptions{admin: true})
	token := login(t, app)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("category", "wedding"))
	require.NoError(t, w.Close())

	rec := app.postForm(t, "/api/admin/gallery", body, w.FormDataContentType(), echo.HeaderAuthorization, "Bearer "+token)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var issues []issue
	require.NoError(t, json.Unmarshal(decode[errorBody](t, rec).Error, &issues))
	require.Len(t, issues, 1)
	assert.Equal(t, "file", issues[0].Field)
}
