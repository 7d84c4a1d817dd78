package client_test

import (
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/neobank/backoffice/config"
	"github.com/neobank/backoffice/internal/fixtures/mocks"
	"github.com/neobank/backoffice/pkg/domain"
	accountsvc "github.com/neobank/backoffice/pkg/service/account"
	clientsvc "github.com/neobank/backoffice/pkg/service/client"
	txsvc "github.com/neobank/backoffice/pkg/service/transaction"
	"github.com/neobank/backoffice/webapi"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(uow *mocks.UnitOfWork) *fiber.App {
	logger := slog.Default()
	cfg := &config.AppConfig{
		Env:       "test",
		RateLimit: config.RateLimitConfig{MaxRequests: 1000, Window: time.Minute},
	}
	return webapi.NewApp(webapi.Services{
		Client:      clientsvc.New(uow, logger),
		Account:     accountsvc.New(uow, logger),
		Transaction: txsvc.New(uow, logger),
	}, cfg)
}

func TestCreateClient(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		desc       string
		body       string
		setup      func(clientRepo *mocks.ClientRepository)
		wantStatus int
	}{
		{
			desc: "created",
			body: `{"identification":42,"name":"Jose Lema","gender":"M","age":30,` +
				`"address":"Otavalo sn y principal","phone":98254785,"password":"1234","state":true}`,
			setup: func(clientRepo *mocks.ClientRepository) {
				clientRepo.On("Exists", mock.Anything, int64(42)).Return(false, nil)
				clientRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus: fiber.StatusCreated,
		},
		{
			desc: "duplicate identification",
			body: `{"identification":42,"name":"Jose Lema","age":30,"password":"1234"}`,
			setup: func(clientRepo *mocks.ClientRepository) {
				clientRepo.On("Exists", mock.Anything, int64(42)).Return(true, nil)
			},
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc: "under minimum age",
			body: `{"identification":43,"name":"Marie","age":17,"password":"1234"}`,
			setup: func(clientRepo *mocks.ClientRepository) {
				clientRepo.On("Exists", mock.Anything, int64(43)).Return(false, nil)
			},
			wantStatus: fiber.StatusTooEarly,
		},
		{
			desc:       "invalid body",
			body:       `{"identification":"not a number"}`,
			setup:      func(clientRepo *mocks.ClientRepository) {},
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "missing required fields",
			body:       `{"identification":44}`,
			setup:      func(clientRepo *mocks.ClientRepository) {},
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			clientRepo := &mocks.ClientRepository{}
			tc.setup(clientRepo)
			app := newTestApp(&mocks.UnitOfWork{Clients: clientRepo})

			req := httptest.NewRequest("POST", "/clients", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck
			require.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestGetClient(t *testing.T) {
	t.Parallel()
	clientRepo := &mocks.ClientRepository{}
	clientRepo.On("Get", mock.Anything, int64(42)).
		Return(&domain.Client{Identification: 42, Name: "Jose Lema", Age: 30}, nil)
	app := newTestApp(&mocks.UnitOfWork{Clients: clientRepo})

	resp, err := app.Test(httptest.NewRequest("GET", "/clients/42", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetClient_NotFound(t *testing.T) {
	t.Parallel()
	clientRepo := &mocks.ClientRepository{}
	clientRepo.On("Get", mock.Anything, int64(7)).Return(nil, domain.ErrClientNotFound)
	app := newTestApp(&mocks.UnitOfWork{Clients: clientRepo})

	resp, err := app.Test(httptest.NewRequest("GET", "/clients/7", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteClient_NonZeroBalance(t *testing.T) {
	t.Parallel()
	clientRepo := &mocks.ClientRepository{}
	accountRepo := &mocks.AccountRepository{}
	clientRepo.On("Get", mock.Anything, int64(42)).
		Return(&domain.Client{Identification: 42, Age: 30}, nil)
	accountRepo.On("ListByClientForUpdate", mock.Anything, int64(42)).
		Return([]*domain.Account{{Number: 1, Balance: 100, ClientIdentification: 42}}, nil)
	app := newTestApp(&mocks.UnitOfWork{Clients: clientRepo, Accounts: accountRepo})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/clients/42", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusNotAcceptable, resp.StatusCode)
}

func TestDeleteClient_Success(t *testing.T) {
	t.Parallel()
	clientRepo := &mocks.ClientRepository{}
	accountRepo := &mocks.AccountRepository{}
	clientRepo.On("Get", mock.Anything, int64(42)).
		Return(&domain.Client{Identification: 42, Age: 30}, nil)
	accountRepo.On("ListByClientForUpdate", mock.Anything, int64(42)).
		Return([]*domain.Account{{Number: 1, Balance: 0, ClientIdentification: 42}}, nil)
	clientRepo.On("Delete", mock.Anything, int64(42)).Return(nil)
	app := newTestApp(&mocks.UnitOfWork{Clients: clientRepo, Accounts: accountRepo})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/clients/42", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
