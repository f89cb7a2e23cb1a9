package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"quickbite/config"
	"quickbite/internal/domain/authz"
	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/repository"
	"quickbite/internal/domain/service"
	"quickbite/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStore is the shared in-memory state behind all repository fakes, so a
// service and its transactional repositories observe the same data.
type fakeStore struct {
	users       map[uuid.UUID]*entity.User
	restaurants map[uuid.UUID]*entity.Restaurant
	items       map[uuid.UUID]*entity.Item
	orders      map[uuid.UUID]*entity.Order
	assignments map[uuid.UUID]*entity.CourierAssignment
	positions   []*entity.CourierPosition
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       make(map[uuid.UUID]*entity.User),
		restaurants: make(map[uuid.UUID]*entity.Restaurant),
		items:       make(map[uuid.UUID]*entity.Item),
		orders:      make(map[uuid.UUID]*entity.Order),
		assignments: make(map[uuid.UUID]*entity.CourierAssignment),
	}
}

// fakeTxManager runs the function against the same store. Rollback is not
// simulated; tests assert on returned errors instead.
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(txRepo repository.RepositoryFactory) error) error {
	return fn(&fakeFactory{store: m.store})
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUserRepository() repository.UserRepository {
	return &fakeUserRepo{store: f.store}
}

func (f *fakeFactory) NewOrderRepository() repository.OrderRepository {
	return &fakeOrderRepo{store: f.store}
}

func (f *fakeFactory) NewItemRepository() repository.ItemRepository {
	return &fakeItemRepo{store: f.store}
}

func (f *fakeFactory) NewAssignmentRepository() repository.AssignmentRepository {
	return &fakeAssignmentRepo{store: f.store}
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.users)), nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return domainerrors.ErrUserAlreadyExists
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	r.store.users[user.ID] = user

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	r.store.users[user.ID] = user

	return nil
}

type fakeRestaurantRepo struct {
	store *fakeStore
}

func (r *fakeRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, ok := r.store.restaurants[id]
	if !ok {
		return nil, repository.ErrRestaurantNotFound
	}

	return restaurant, nil
}

func (r *fakeRestaurantRepo) List(_ context.Context, filter repository.RestaurantFilter, opts repository.ListOptions) ([]*entity.Restaurant, error) {
	var out []*entity.Restaurant
	for _, restaurant := range r.store.restaurants {
		if filter.Name != "" && !strings.Contains(strings.ToLower(restaurant.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, restaurant)
	}
	if len(out) > opts.Limit {
		out = out[:opts.Limit]
	}

	return out, nil
}

func (r *fakeRestaurantRepo) Create(_ context.Context, restaurant *entity.Restaurant) error {
	if restaurant.ID == uuid.Nil {
		restaurant.ID = uuid.New()
	}
	r.store.restaurants[restaurant.ID] = restaurant

	return nil
}

func (r *fakeRestaurantRepo) Update(_ context.Context, restaurant *entity.Restaurant) error {
	if _, ok := r.store.restaurants[restaurant.ID]; !ok {
		return repository.ErrRestaurantNotFound
	}
	r.store.restaurants[restaurant.ID] = restaurant

	return nil
}

func (r *fakeRestaurantRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.restaurants[id]; !ok {
		return repository.ErrRestaurantNotFound
	}
	delete(r.store.restaurants, id)

	return nil
}

type fakeItemRepo struct {
	store *fakeStore
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Item, error) {
	item, ok := r.store.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}

	return item, nil
}

func (r *fakeItemRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, id := range ids {
		if item, ok := r.store.items[id]; ok {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *fakeItemRepo) List(_ context.Context, filter repository.ItemFilter, opts repository.ListOptions) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, item := range r.store.items {
		if filter.Name != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.RestaurantID != nil && item.RestaurantID != *filter.RestaurantID {
			continue
		}
		if filter.MinPriceCents != nil && item.PriceCents < *filter.MinPriceCents {
			continue
		}
		if filter.MaxPriceCents != nil && item.PriceCents > *filter.MaxPriceCents {
			continue
		}
		out = append(out, item)
	}
	if len(out) > opts.Limit {
		out = out[:opts.Limit]
	}

	return out, nil
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.store.items[item.ID] = item

	return nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.Item) error {
	if _, ok := r.store.items[item.ID]; !ok {
		return repository.ErrItemNotFound
	}
	r.store.items[item.ID] = item

	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.items[id]; !ok {
		return repository.ErrItemNotFound
	}
	delete(r.store.items, id)

	return nil
}

type fakeOrderRepo struct {
	store *fakeStore
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := r.store.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	order.Assignment = r.store.assignments[order.ID]

	return order, nil
}

func (r *fakeOrderRepo) List(_ context.Context, filter repository.OrderFilter, opts repository.ListOptions) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, order := range r.store.orders {
		if filter.CustomerID != nil && order.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.Status != nil && order.Status != *filter.Status {
			continue
		}
		out = append(out, order)
	}
	if len(out) > opts.Limit {
		out = out[:opts.Limit]
	}

	return out, nil
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	r.store.orders[order.ID] = order

	return nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus) error {
	order, ok := r.store.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.Status = status

	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.orders[id]; !ok {
		return repository.ErrOrderNotFound
	}
	delete(r.store.orders, id)
	delete(r.store.assignments, id)

	return nil
}

type fakeAssignmentRepo struct {
	store *fakeStore
}

func (r *fakeAssignmentRepo) FindByOrderID(_ context.Context, orderID uuid.UUID) (*entity.CourierAssignment, error) {
	assignment, ok := r.store.assignments[orderID]
	if !ok {
		return nil, repository.ErrAssignmentNotFound
	}

	return assignment, nil
}

func (r *fakeAssignmentRepo) CountInFlightByCourier(_ context.Context, courierID uuid.UUID) (int64, error) {
	var count int64
	for _, assignment := range r.store.assignments {
		if assignment.CourierID == courierID && assignment.DeliveredAt == nil {
			count++
		}
	}

	return count, nil
}

func (r *fakeAssignmentRepo) Create(_ context.Context, assignment *entity.CourierAssignment) error {
	if _, ok := r.store.assignments[assignment.OrderID]; ok {
		return domainerrors.ErrOrderAlreadyAssigned
	}
	r.store.assignments[assignment.OrderID] = assignment

	return nil
}

func (r *fakeAssignmentRepo) Update(_ context.Context, assignment *entity.CourierAssignment) error {
	if _, ok := r.store.assignments[assignment.OrderID]; !ok {
		return repository.ErrAssignmentNotFound
	}
	r.store.assignments[assignment.OrderID] = assignment

	return nil
}

type fakePositionRepo struct {
	store *fakeStore
}

func (r *fakePositionRepo) Create(_ context.Context, position *entity.CourierPosition) error {
	if position.ID == uuid.Nil {
		position.ID = uuid.New()
	}
	r.store.positions = append(r.store.positions, position)

	return nil
}

func (r *fakePositionRepo) ListByCourier(_ context.Context, courierID uuid.UUID, opts repository.ListOptions) ([]*entity.CourierPosition, error) {
	var out []*entity.CourierPosition
	for i := len(r.store.positions) - 1; i >= 0; i-- {
		if r.store.positions[i].CourierID == courierID {
			out = append(out, r.store.positions[i])
		}
	}
	if len(out) > opts.Limit {
		out = out[:opts.Limit]
	}

	return out, nil
}

// fakeHasher marks hashes with a prefix so tests can assert on rotation.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed$" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed$"+password
}

// fakeTokenService hands out opaque tokens and remembers the claims behind
// them, enforcing the type check the way the JWT implementation does.
type fakeTokenService struct {
	issued map[string]*service.Claims
	seq    int
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{issued: make(map[string]*service.Claims)}
}

func (s *fakeTokenService) mint(user *entity.User, tokenType service.TokenType) string {
	s.seq++
	token := fmt.Sprintf("%s-token-%d", tokenType, s.seq)
	s.issued[token] = &service.Claims{
		UserID:      user.ID,
		Role:        user.Role,
		IsSuperuser: user.IsSuperuser,
		Type:        tokenType,
	}

	return token
}

func (s *fakeTokenService) GenerateTokens(user *entity.User) (string, string, error) {
	return s.mint(user, service.TokenTypeAccess), s.mint(user, service.TokenTypeRefresh), nil
}

func (s *fakeTokenService) GenerateConfirmationToken(user *entity.User) (string, error) {
	return s.mint(user, service.TokenTypeConfirmation), nil
}

func (s *fakeTokenService) ValidateToken(tokenString string, expected service.TokenType) (*service.Claims, error) {
	claims, ok := s.issued[tokenString]
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}
	if claims.Type != expected {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("unexpected token type " + string(claims.Type))
	}

	return claims, nil
}

func (s *fakeTokenService) GetRefreshTokenDuration() time.Duration {
	return time.Hour
}

// fakeMailQueue records enqueued jobs.
type fakeMailQueue struct {
	jobs        []*service.EmailJob
	failEnqueue bool
}

func (q *fakeMailQueue) Enqueue(_ context.Context, job *service.EmailJob) error {
	if q.failEnqueue {
		return fmt.Errorf("queue unavailable")
	}
	q.jobs = append(q.jobs, job)

	return nil
}

func (q *fakeMailQueue) Close() error {
	return nil
}

// serviceFixtures wires every use case against one shared fake store.
type serviceFixtures struct {
	store       *fakeStore
	tokens      *fakeTokenService
	mail        *fakeMailQueue
	users       usecase.UserUsecase
	restaurants usecase.RestaurantUsecase
	items       usecase.ItemUsecase
	orders      usecase.OrderUsecase
	couriers    usecase.CourierUsecase
}

func newServiceFixtures() *serviceFixtures {
	store := newFakeStore()
	logger := newDiscardLogger()
	tokens := newFakeTokenService()
	mail := &fakeMailQueue{}
	txManager := &fakeTxManager{store: store}

	userRepo := &fakeUserRepo{store: store}
	restaurantRepo := &fakeRestaurantRepo{store: store}
	itemRepo := &fakeItemRepo{store: store}
	orderRepo := &fakeOrderRepo{store: store}
	assignmentRepo := &fakeAssignmentRepo{store: store}
	positionRepo := &fakePositionRepo{store: store}

	return &serviceFixtures{
		store:  store,
		tokens: tokens,
		mail:   mail,
		users: NewUserService(UserServiceParams{
			TxManager:    txManager,
			UserRepo:     userRepo,
			Hasher:       fakeHasher{},
			TokenService: tokens,
			MailQueue:    mail,
			Config:       &config.Config{FrontendURL: "http://localhost:3000"},
			Logger:       logger,
		}),
		restaurants: NewRestaurantService(RestaurantServiceParams{
			RestaurantRepo: restaurantRepo,
			Logger:         logger,
		}),
		items: NewItemService(ItemServiceParams{
			ItemRepo:       itemRepo,
			RestaurantRepo: restaurantRepo,
			Logger:         logger,
		}),
		orders: NewOrderService(OrderServiceParams{
			TxManager:      txManager,
			OrderRepo:      orderRepo,
			RestaurantRepo: restaurantRepo,
			Logger:         logger,
		}),
		couriers: NewCourierService(CourierServiceParams{
			TxManager:      txManager,
			OrderRepo:      orderRepo,
			AssignmentRepo: assignmentRepo,
			PositionRepo:   positionRepo,
			Logger:         logger,
		}),
	}
}

// --- Seed helpers ---

func (f *serviceFixtures) seedUser(role entity.Role, superuser bool) *entity.User {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "user-" + uuid.NewString()[:8],
		Email:        uuid.NewString()[:8] + "@example.com",
		PasswordHash: "hashed$password123",
		Role:         role,
		IsActive:     true,
		IsVerified:   true,
		IsSuperuser:  superuser,
	}
	f.store.users[user.ID] = user

	return user
}

func (f *serviceFixtures) seedRestaurant() *entity.Restaurant {
	restaurant := &entity.Restaurant{
		ID:      uuid.New(),
		Name:    "Testaurant",
		Address: "1 Test Street",
		IsOpen:  true,
	}
	f.store.restaurants[restaurant.ID] = restaurant

	return restaurant
}

func (f *serviceFixtures) seedItem(restaurantID uuid.UUID, priceCents int64, available bool) *entity.Item {
	item := &entity.Item{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Name:         "item-" + uuid.NewString()[:8],
		PriceCents:   priceCents,
		IsAvailable:  available,
	}
	f.store.items[item.ID] = item

	return item
}

func (f *serviceFixtures) seedOrder(customerID, restaurantID uuid.UUID, status entity.OrderStatus) *entity.Order {
	order := &entity.Order{
		ID:              uuid.New(),
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		DeliveryAddress: "2 Test Avenue",
		Status:          status,
	}
	f.store.orders[order.ID] = order

	return order
}

func (f *serviceFixtures) seedAssignment(orderID, courierID uuid.UUID) *entity.CourierAssignment {
	assignment := &entity.CourierAssignment{
		OrderID:    orderID,
		CourierID:  courierID,
		AssignedAt: time.Now(),
	}
	f.store.assignments[orderID] = assignment

	return assignment
}

func actorFor(user *entity.User) authz.Actor {
	return authz.Actor{ID: user.ID, Role: user.Role, IsSuperuser: user.IsSuperuser}
}
