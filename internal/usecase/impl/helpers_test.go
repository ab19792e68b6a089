package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pharmacy/config"
	"pharmacy/internal/domain/repository"
	mockRepo "pharmacy/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Pagination: &config.PaginationConfig{
			DefaultSize: 20,
			MaxSize:     100,
		},
	}
}

// repoMocks bundles one mock per repository, all reachable through factory.
// The same mocks are handed to services as their non-transactional dependencies.
type repoMocks struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	user         *mockRepo.MockUserRepository
	otp          *mockRepo.MockOTPRepository
	refreshToken *mockRepo.MockRefreshTokenRepository
	address      *mockRepo.MockAddressRepository
	brand        *mockRepo.MockBrandRepository
	category     *mockRepo.MockCategoryRepository
	product      *mockRepo.MockProductRepository
	variant      *mockRepo.MockVariantRepository
	cart         *mockRepo.MockCartRepository
	order        *mockRepo.MockOrderRepository
	refund       *mockRepo.MockRefundRepository
	wishlist     *mockRepo.MockWishlistRepository
	device       *mockRepo.MockDeviceRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	m := &repoMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		user:         mockRepo.NewMockUserRepository(t),
		otp:          mockRepo.NewMockOTPRepository(t),
		refreshToken: mockRepo.NewMockRefreshTokenRepository(t),
		address:      mockRepo.NewMockAddressRepository(t),
		brand:        mockRepo.NewMockBrandRepository(t),
		category:     mockRepo.NewMockCategoryRepository(t),
		product:      mockRepo.NewMockProductRepository(t),
		variant:      mockRepo.NewMockVariantRepository(t),
		cart:         mockRepo.NewMockCartRepository(t),
		order:        mockRepo.NewMockOrderRepository(t),
		refund:       mockRepo.NewMockRefundRepository(t),
		wishlist:     mockRepo.NewMockWishlistRepository(t),
		device:       mockRepo.NewMockDeviceRepository(t),
	}

	m.factory.EXPECT().UserRepo().Return(m.user).Maybe()
	m.factory.EXPECT().OTPRepo().Return(m.otp).Maybe()
	m.factory.EXPECT().RefreshTokenRepo().Return(m.refreshToken).Maybe()
	m.factory.EXPECT().AddressRepo().Return(m.address).Maybe()
	m.factory.EXPECT().BrandRepo().Return(m.brand).Maybe()
	m.factory.EXPECT().CategoryRepo().Return(m.category).Maybe()
	m.factory.EXPECT().ProductRepo().Return(m.product).Maybe()
	m.factory.EXPECT().VariantRepo().Return(m.variant).Maybe()
	m.factory.EXPECT().CartRepo().Return(m.cart).Maybe()
	m.factory.EXPECT().OrderRepo().Return(m.order).Maybe()
	m.factory.EXPECT().RefundRepo().Return(m.refund).Maybe()
	m.factory.EXPECT().WishlistRepo().Return(m.wishlist).Maybe()
	m.factory.EXPECT().DeviceRepo().Return(m.device).Maybe()

	return m
}

// expectTx makes every transaction run its callback against the mocked factory
// and return the callback's error, as the real manager does.
func (m *repoMocks) expectTx() {
	m.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).
		Maybe()
}
