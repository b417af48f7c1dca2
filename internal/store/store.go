// Package store implementa o dono único do estado de domínio da loja.
//
// Toda mutação passa pelo Store; leitores recebem cópias das coleções e
// nenhum outro componente mantém estado mutável. Após cada mutação o
// snapshot completo é persistido em um slot local durável; na inicialização
// o slot é lido e, na ausência de snapshot válido, o dataset semente é usado.
package store

import (
	"sync"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
	"github.com/yurizinlala/bike-erp/internal/domain/ident"
	"github.com/yurizinlala/bike-erp/pkg/logger"
)

// DefaultKey chave fixa do slot de persistência.
const DefaultKey = "bike-erp-storage"

// SnapshotStore porta de persistência local do snapshot serializado.
type SnapshotStore interface {
	Save(key string, data []byte) error
	Load(key string) (data []byte, ok bool, err error)
}

// Recorder recebe eventos do store para instrumentação. Opcional.
type Recorder interface {
	MutationObserved(entity, op string)
	PersistFailure()
}

// Observer é notificado após cada mutação. O callback roda fora do lock.
type Observer func()

// Options dependências do Store, montadas na raiz de composição.
type Options struct {
	Snapshots SnapshotStore // nil desliga a persistência
	Key       string        // default: DefaultKey
	Logger    *logger.Logger
	Metrics   Recorder
}

// Store mantém as coleções de domínio e as configurações da loja.
type Store struct {
	mu         sync.RWMutex
	products   []entity.Product
	clients    []entity.Client
	orders     []entity.Order
	pendencies []entity.Pendency
	rentals    []entity.Rental
	settings   entity.Settings

	snapshots SnapshotStore
	key       string
	log       *logger.Logger
	metrics   Recorder

	obsMu     sync.Mutex
	observers map[int]Observer
	nextObsID int
}

// New constrói o Store restaurando o snapshot persistido, se houver.
// Snapshot ausente ou malformado cai no dataset semente; erro de leitura
// degrada para "como se nunca tivesse persistido".
func New(opts Options) *Store {
	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	s := &Store{
		snapshots: opts.Snapshots,
		key:       opts.Key,
		log:       opts.Logger,
		metrics:   opts.Metrics,
		observers: make(map[int]Observer),
	}
	s.restore(s.loadInitial())
	return s
}

func (s *Store) loadInitial() Snapshot {
	if s.snapshots == nil {
		return Seed()
	}
	data, ok, err := s.snapshots.Load(s.key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("leitura do snapshot falhou, usando dados semente")
		return Seed()
	}
	if !ok {
		s.log.Info().Str("key", s.key).Msg("snapshot ausente, usando dados semente")
		return Seed()
	}
	snap, err := DecodeSnapshot(data)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("snapshot malformado, usando dados semente")
		return Seed()
	}
	return snap
}

func (s *Store) restore(snap Snapshot) {
	s.products = snap.Products
	s.clients = snap.Clients
	s.orders = snap.Orders
	s.pendencies = snap.Pendencies
	s.rentals = snap.Rentals
	s.settings = snap.Settings
	if s.products == nil {
		s.products = []entity.Product{}
	}
	if s.clients == nil {
		s.clients = []entity.Client{}
	}
	if s.orders == nil {
		s.orders = []entity.Order{}
	}
	if s.pendencies == nil {
		s.pendencies = []entity.Pendency{}
	}
	if s.rentals == nil {
		s.rentals = []entity.Rental{}
	}
}

// Subscribe registra um observador e devolve a função de cancelamento.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.obsMu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.obsMu.Unlock()
	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

func (s *Store) notify() {
	s.obsMu.Lock()
	fns := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.obsMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// persistLocked serializa o estado atual e grava no slot. Chamado com o
// lock de escrita tomado; falha de persistência não propaga para o caller.
func (s *Store) persistLocked() {
	if s.snapshots == nil {
		return
	}
	data, err := EncodeSnapshot(s.snapshotLocked())
	if err == nil {
		err = s.snapshots.Save(s.key, data)
	}
	if err != nil {
		if s.metrics != nil {
			s.metrics.PersistFailure()
		}
		s.log.Warn().Err(err).Str("key", s.key).Msg("persistência do snapshot falhou")
	}
}

func (s *Store) afterMutation(entityName, op string) {
	if s.metrics != nil {
		s.metrics.MutationObserved(entityName, op)
	}
	s.notify()
}

// ──────────────────────────────────────────────
// Leituras (sempre cópias)
// ──────────────────────────────────────────────

// Products devolve uma cópia da coleção de produtos, na ordem de inserção.
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID localiza um produto pelo id.
func (s *Store) ProductByID(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Clients devolve uma cópia da coleção de clientes.
func (s *Store) Clients() []entity.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// ClientByID localiza um cliente pelo id.
func (s *Store) ClientByID(id string) (entity.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Client{}, false
}

// Orders devolve uma cópia da coleção de pedidos.
func (s *Store) Orders() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrderByID localiza um pedido pelo id.
func (s *Store) OrderByID(id string) (entity.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return entity.Order{}, false
}

// Pendencies devolve uma cópia da coleção de pendências.
func (s *Store) Pendencies() []entity.Pendency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Pendency, len(s.pendencies))
	copy(out, s.pendencies)
	return out
}

// PendencyByID localiza uma pendência pelo id.
func (s *Store) PendencyByID(id string) (entity.Pendency, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.pendencies {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Pendency{}, false
}

// Rentals devolve uma cópia da coleção de aluguéis.
func (s *Store) Rentals() []entity.Rental {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Rental, len(s.rentals))
	copy(out, s.rentals)
	return out
}

// RentalByID localiza um aluguel pelo id.
func (s *Store) RentalByID(id string) (entity.Rental, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rentals {
		if r.ID == id {
			return r, true
		}
	}
	return entity.Rental{}, false
}

// Settings devolve as configurações atuais da loja.
func (s *Store) Settings() entity.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// ──────────────────────────────────────────────
// Mutações: produtos
// ──────────────────────────────────────────────

// AddProduct acrescenta o produto ao final da coleção com id recém-gerado.
func (s *Store) AddProduct(p entity.Product) entity.Product {
	s.mu.Lock()
	p.ID = ident.New(ident.PrefixProduct)
	s.products = append(s.products, p)
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("product", "add")
	return p
}

// UpdateProduct substitui apenas os campos presentes no patch.
// Id ausente é no-op silencioso.
func (s *Store) UpdateProduct(id string, patch ProductPatch) {
	s.mu.Lock()
	idx := indexByID(s.products, id, func(p entity.Product) string { return p.ID })
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	patch.apply(&s.products[idx])
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("product", "update")
}

// DeleteProduct remove o produto; id ausente é no-op silencioso.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	idx := indexByID(s.products, id, func(p entity.Product) string { return p.ID })
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("product", "delete")
}

// ──────────────────────────────────────────────
// Mutações: clientes
// ──────────────────────────────────────────────

// AddClient acrescenta o cliente ao final da coleção com id recém-gerado.
func (s *Store) AddClient(c entity.Client) entity.Client {
	s.mu.Lock()
	c.ID = ident.New(ident.PrefixClient)
	if c.Purchases == nil {
		c.Purchases = []entity.PurchaseHistory{}
	}
	if c.Revisions == nil {
		c.Revisions = []entity.RevisionHistory{}
	}
	s.clients = append(s.clients, c)
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("client", "add")
	return c
}

// UpdateClient substitui apenas os campos presentes no patch.
func (s *Store) UpdateClient(id string, patch ClientPatch) {
	s.mu.Lock()
	idx := indexByID(s.clients, id, func(c entity.Client) string { return c.ID })
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	patch.apply(&s.clients[idx])
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("client", "update")
}

// DeleteClient remove o cliente. Sem cascata: os pedidos dele permanecem.
func (s *Store) DeleteClient(id string) {
	s.mu.Lock()
	idx := indexByID(s.clients, id, func(c entity.Client) string { return c.ID })
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.clients = append(s.clients[:idx], s.clients[idx+1:]...)
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("client", "delete")
}

// ──────────────────────────────────────────────
// Mutações: pedidos
// ──────────────────────────────────────────────

// AddOrder acrescenta o pedido ao final da coleção com id recém-gerado.
func (s *Store) AddOrder(o entity.Order) entity.Order {
	s.mu.Lock()
	o.ID = ident.New(ident.PrefixOrder)
	s.orders = append(s.orders, o)
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("order", "add")
	return o
}

// UpdateOrderStatus troca somente o status do pedido. O store aceita qualquer
// um dos quatro estágios incondicionalmente; a validação do grafo de
// transições é responsabilidade da camada de aplicação.
func (s *Store) UpdateOrderStatus(id string, status entity.OrderStatus) {
	s.mu.Lock()
	idx := indexByID(s.orders, id, func(o entity.Order) string { return o.ID })
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.orders[idx].Status = status
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("order", "status")
}

// DeleteOrder remove o pedido; id ausente é no-op silencioso.
func (s *Store) DeleteOrder(id string) {
	s.mu.Lock()
	idx := indexByID(s.orders, id, func(o entity.Order) string { return o.ID })
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.orders = append(s.orders[:idx], s.orders[idx+1:]...)
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("order", "delete")
}

// ──────────────────────────────────────────────
// Mutações: pendências
// ──────────────────────────────────────────────

// AddPendency acrescenta a pendência ao final da coleção com id recém-gerado.
func (s *Store) AddPendency(p entity.Pendency) entity.Pendency {
	s.mu.Lock()
	p.ID = ident.New(ident.PrefixPendency)
	s.pendencies = append(s.pendencies, p)
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("pendency", "add")
	return p
}

// ResolvePendency remove a pendência (resolver = apagar, sem auditoria).
func (s *Store) ResolvePendency(id string) {
	s.mu.Lock()
	idx := indexByID(s.pendencies, id, func(p entity.Pendency) string { return p.ID })
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.pendencies = append(s.pendencies[:idx], s.pendencies[idx+1:]...)
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("pendency", "resolve")
}

// ──────────────────────────────────────────────
// Mutações: aluguéis
// ──────────────────────────────────────────────

// AddRental acrescenta o aluguel ao final da coleção com id recém-gerado.
func (s *Store) AddRental(r entity.Rental) entity.Rental {
	s.mu.Lock()
	r.ID = ident.New(ident.PrefixRental)
	s.rentals = append(s.rentals, r)
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("rental", "add")
	return r
}

// UpdateRental substitui apenas os campos presentes no patch.
func (s *Store) UpdateRental(id string, patch RentalPatch) {
	s.mu.Lock()
	idx := indexByID(s.rentals, id, func(r entity.Rental) string { return r.ID })
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	patch.apply(&s.rentals[idx])
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("rental", "update")
}

// DeleteRental remove o aluguel; id ausente é no-op silencioso.
func (s *Store) DeleteRental(id string) {
	s.mu.Lock()
	idx := indexByID(s.rentals, id, func(r entity.Rental) string { return r.ID })
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.rentals = append(s.rentals[:idx], s.rentals[idx+1:]...)
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("rental", "delete")
}

// ──────────────────────────────────────────────
// Mutações: configurações
// ──────────────────────────────────────────────

// UpdateSettings substitui apenas os campos presentes no patch.
func (s *Store) UpdateSettings(patch SettingsPatch) {
	s.mu.Lock()
	patch.apply(&s.settings)
	s.persistLocked()
	s.mu.Unlock()
	s.afterMutation("settings", "update")
}

func indexByID[T any](items []T, id string, key func(T) string) int {
	for i, it := range items {
		if key(it) == id {
			return i
		}
	}
	return -1
}
