package transaction_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/neobank/backoffice/internal/fixtures/mocks"
	"github.com/neobank/backoffice/pkg/domain"
	txsvc "github.com/neobank/backoffice/pkg/service/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newServiceWithMocks() (*txsvc.Service, *mocks.ClientRepository, *mocks.AccountRepository, *mocks.TransactionRepository) {
	clientRepo := &mocks.ClientRepository{}
	accountRepo := &mocks.AccountRepository{}
	txRepo := &mocks.TransactionRepository{}
	uow := &mocks.UnitOfWork{Clients: clientRepo, Accounts: accountRepo, Transactions: txRepo}
	return txsvc.New(uow, slog.Default()), clientRepo, accountRepo, txRepo
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPost_Credit(t *testing.T) {
	t.Parallel()
	svc, _, accountRepo, txRepo := newServiceWithMocks()
	acct := &domain.Account{Number: 10, Balance: 300, ClientIdentification: 42}
	accountRepo.On("GetForUpdate", mock.Anything, int64(10)).Return(acct, nil)
	accountRepo.On("Update", mock.Anything, acct).Return(nil)
	txRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	tx, err := svc.Post(context.Background(), 10, domain.TransactionCredit, 200)
	require.NoError(t, err)
	assert.Equal(t, 300.0, tx.BalanceBefore)
	assert.Equal(t, 500.0, tx.BalanceAfter)
	assert.Equal(t, 500.0, acct.Balance)
	accountRepo.AssertExpectations(t)
	txRepo.AssertExpectations(t)
}

func TestPost_Debit(t *testing.T) {
	t.Parallel()
	svc, _, accountRepo, txRepo := newServiceWithMocks()
	acct := &domain.Account{Number: 10, Balance: 1000, ClientIdentification: 42}
	accountRepo.On("GetForUpdate", mock.Anything, int64(10)).Return(acct, nil)
	accountRepo.On("Update", mock.Anything, acct).Return(nil)
	txRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	tx, err := svc.Post(context.Background(), 10, domain.TransactionDebit, 500)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, tx.BalanceBefore)
	assert.Equal(t, 500.0, tx.BalanceAfter)
	assert.Equal(t, 500.0, acct.Balance)
}

func TestPost_InsufficientBalance(t *testing.T) {
	t.Parallel()
	svc, _, accountRepo, txRepo := newServiceWithMocks()
	acct := &domain.Account{Number: 10, Balance: 100, ClientIdentification: 42}
	accountRepo.On("GetForUpdate", mock.Anything, int64(10)).Return(acct, nil)

	_, err := svc.Post(context.Background(), 10, domain.TransactionDebit, 500)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, 100.0, acct.Balance)
	accountRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPost_AccountNotFound(t *testing.T) {
	t.Parallel()
	svc, _, accountRepo, _ := newServiceWithMocks()
	accountRepo.On("GetForUpdate", mock.Anything, int64(99)).
		Return(nil, domain.ErrAccountNotFound)

	_, err := svc.Post(context.Background(), 99, domain.TransactionCredit, 50)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestPost_NonPositiveAmount(t *testing.T) {
	t.Parallel()
	svc, _, accountRepo, txRepo := newServiceWithMocks()
	acct := &domain.Account{Number: 10, Balance: 100, ClientIdentification: 42}
	accountRepo.On("GetForUpdate", mock.Anything, int64(10)).Return(acct, nil)

	_, err := svc.Post(context.Background(), 10, domain.TransactionCredit, -5)
	require.ErrorIs(t, err, domain.ErrTransactionAmountNotPositive)
	txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStatementReport_AssemblesRows(t *testing.T) {
	t.Parallel()
	svc, clientRepo, accountRepo, txRepo := newServiceWithMocks()
	from, to := day(2025, 2, 1), day(2025, 2, 28)

	txs := []*domain.Transaction{
		{Date: day(2025, 2, 10), Type: domain.TransactionDebit, Amount: 575,
			BalanceBefore: 2000, BalanceAfter: 1425, AccountNumber: 1},
		{Date: day(2025, 2, 12), Type: domain.TransactionCredit, Amount: 600,
			BalanceBefore: 100, BalanceAfter: 700, AccountNumber: 2},
		// Another client's account; must be skipped, not dereferenced.
		{Date: day(2025, 2, 13), Type: domain.TransactionCredit, Amount: 50,
			BalanceBefore: 0, BalanceAfter: 50, AccountNumber: 77},
	}
	txRepo.On("ListByDateRange", mock.Anything, from, to, 0, 10).
		Return(txs, int64(3), nil)
	clientRepo.On("Get", mock.Anything, int64(42)).
		Return(&domain.Client{Identification: 42, Name: "Jose Lema", Age: 30}, nil)
	accountRepo.On("ListByClient", mock.Anything, int64(42)).
		Return([]*domain.Account{
			{Number: 1, Type: domain.AccountSavings, State: true, ClientIdentification: 42},
			{Number: 2, Type: domain.AccountChecking, State: true, ClientIdentification: 42},
		}, nil)

	report, err := svc.StatementReport(context.Background(), from, to, 42, 0, 10)
	require.NoError(t, err)
	require.Len(t, report.Content, 2)
	assert.Equal(t, int64(3), report.TotalElements)
	assert.Equal(t, 0, report.Page)
	assert.Equal(t, 10, report.Size)

	first := report.Content[0]
	assert.Equal(t, "Jose Lema", first.ClientName)
	assert.Equal(t, int64(1), first.AccountNumber)
	assert.Equal(t, "SAVINGS", first.AccountType)
	assert.Equal(t, 2000.0, first.InitialBalance)
	assert.Equal(t, 575.0, first.TransactionValue)
	assert.Equal(t, 1425.0, first.AvailableBalance)
	assert.True(t, first.State)
}

func TestStatementReport_Empty(t *testing.T) {
	t.Parallel()
	svc, clientRepo, _, txRepo := newServiceWithMocks()
	from, to := day(2025, 3, 1), day(2025, 3, 31)
	txRepo.On("ListByDateRange", mock.Anything, from, to, 0, 10).
		Return([]*domain.Transaction{}, int64(0), nil)

	_, err := svc.StatementReport(context.Background(), from, to, 42, 0, 10)
	require.ErrorIs(t, err, domain.ErrReportEmpty)
	clientRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestStatementReport_LaterPageOfNonEmptyRange(t *testing.T) {
	t.Parallel()
	svc, clientRepo, accountRepo, txRepo := newServiceWithMocks()
	from, to := day(2025, 3, 1), day(2025, 3, 31)

	// Page 2 is past the end but the range itself has matches, so the
	// caller gets an empty page, not ErrReportEmpty.
	txRepo.On("ListByDateRange", mock.Anything, from, to, 20, 10).
		Return([]*domain.Transaction{}, int64(4), nil)
	clientRepo.On("Get", mock.Anything, int64(42)).
		Return(&domain.Client{Identification: 42, Name: "Jose Lema", Age: 30}, nil)
	accountRepo.On("ListByClient", mock.Anything, int64(42)).
		Return([]*domain.Account{{Number: 1, ClientIdentification: 42}}, nil)

	report, err := svc.StatementReport(context.Background(), from, to, 42, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, report.Content)
	assert.Equal(t, int64(4), report.TotalElements)
}

func TestStatementReport_ClientNotFound(t *testing.T) {
	t.Parallel()
	svc, clientRepo, _, txRepo := newServiceWithMocks()
	from, to := day(2025, 3, 1), day(2025, 3, 31)
	txRepo.On("ListByDateRange", mock.Anything, from, to, 0, 10).
		Return([]*domain.Transaction{{AccountNumber: 1}}, int64(1), nil)
	clientRepo.On("Get", mock.Anything, int64(42)).Return(nil, domain.ErrClientNotFound)

	_, err := svc.StatementReport(context.Background(), from, to, 42, 0, 10)
	require.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestStatementReport_NoAccounts(t *testing.T) {
	t.Parallel()
	svc, clientRepo, accountRepo, txRepo := newServiceWithMocks()
	from, to := day(2025, 3, 1), day(2025, 3, 31)
	txRepo.On("ListByDateRange", mock.Anything, from, to, 0, 10).
		Return([]*domain.Transaction{{AccountNumber: 1}}, int64(1), nil)
	clientRepo.On("Get", mock.Anything, int64(42)).
		Return(&domain.Client{Identification: 42, Age: 30}, nil)
	accountRepo.On("ListByClient", mock.Anything, int64(42)).
		Return([]*domain.Account{}, nil)

	_, err := svc.StatementReport(context.Background(), from, to, 42, 0, 10)
	require.ErrorIs(t, err, domain.ErrNoAccountsForClient)
}
