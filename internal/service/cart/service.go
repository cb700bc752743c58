package cart

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	cartstore "laptophub/internal/cart"
	"laptophub/internal/domain"
	"laptophub/internal/message"
)

// Owner grants serialized access to one cart, normally a quote session.
type Owner interface {
	Do(fn func(*cartstore.Store))
}

type catalogReader interface {
	FindByID(id string) (domain.Product, bool)
	FindBySlug(slug string) (domain.Product, bool)
}

type linkBuilder interface {
	Link(message string) (string, error)
}

type Service struct {
	catalog catalogReader
	links   linkBuilder
	logger  *zap.SugaredLogger
}

func New(c catalogReader, links linkBuilder, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{catalog: c, links: links, logger: logger}
}

// View is a snapshot of a cart with its derived totals.
type View struct {
	Items     []domain.LineItem
	ItemCount int
	Subtotal  int64
}

// Inquiry is a pre-filled WhatsApp message and the link that opens it.
type Inquiry struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

type AddInput struct {
	ProductID string `json:"productId"`
	Slug      string `json:"slug"`
}

type CheckoutInput struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

type UpdateInput struct {
	Actions []UpdateAction `json:"actions"`
}

// UpdateAction is one step of a batched cart update. Quantity accepts any JSON
// scalar and is normalized before it reaches the store.
type UpdateAction struct {
	Action    string `json:"action"`
	ProductID string `json:"productId,omitempty"`
	Slug      string `json:"slug,omitempty"`
	Quantity  any    `json:"quantity,omitempty"`
}

func snapshot(s *cartstore.Store) View {
	return View{Items: s.Items(), ItemCount: s.ItemCount(), Subtotal: s.Subtotal()}
}

func (s *Service) View(ctx context.Context, owner Owner) View {
	var v View
	owner.Do(func(st *cartstore.Store) { v = snapshot(st) })
	return v
}

func (s *Service) resolve(productID, slug string) (domain.Product, error) {
	productID = strings.TrimSpace(productID)
	slug = strings.TrimSpace(slug)
	switch {
	case productID != "":
		if p, ok := s.catalog.FindByID(productID); ok {
			return p, nil
		}
		return domain.Product{}, fmt.Errorf("product %q: %w", productID, domain.ErrNotFound)
	case slug != "":
		if p, ok := s.catalog.FindBySlug(slug); ok {
			return p, nil
		}
		return domain.Product{}, fmt.Errorf("product %q: %w", slug, domain.ErrNotFound)
	default:
		return domain.Product{}, fmt.Errorf("productId or slug required: %w", domain.ErrValidation)
	}
}

// Add puts one unit of the product in the cart. Unknown products leave the
// cart untouched.
func (s *Service) Add(ctx context.Context, owner Owner, in AddInput) (View, error) {
	p, err := s.resolve(in.ProductID, in.Slug)
	if err != nil {
		return View{}, err
	}
	var v View
	owner.Do(func(st *cartstore.Store) {
		st.Add(p)
		v = snapshot(st)
	})
	s.logger.Debugf("cart service: add product_id=%s items=%d", p.ID, v.ItemCount)
	return v, nil
}

func (s *Service) SetQuantity(ctx context.Context, owner Owner, productID string, quantity int) View {
	var v View
	owner.Do(func(st *cartstore.Store) {
		st.UpdateQuantity(productID, quantity)
		v = snapshot(st)
	})
	return v
}

func (s *Service) Remove(ctx context.Context, owner Owner, productID string) View {
	var v View
	owner.Do(func(st *cartstore.Store) {
		st.Remove(productID)
		v = snapshot(st)
	})
	return v
}

func (s *Service) Clear(ctx context.Context, owner Owner) View {
	var v View
	owner.Do(func(st *cartstore.Store) {
		st.Clear()
		v = snapshot(st)
	})
	return v
}

type step func(*cartstore.Store)

// Update applies a batch of actions as one cart action. Every action is
// validated first, so a bad batch leaves the cart unchanged.
func (s *Service) Update(ctx context.Context, owner Owner, in UpdateInput) (View, error) {
	if len(in.Actions) == 0 {
		return View{}, fmt.Errorf("actions required: %w", domain.ErrValidation)
	}
	steps := make([]step, 0, len(in.Actions))
	for _, action := range in.Actions {
		switch strings.ToLower(strings.TrimSpace(action.Action)) {
		case "addlineitem":
			p, err := s.resolve(action.ProductID, action.Slug)
			if err != nil {
				return View{}, err
			}
			steps = append(steps, func(st *cartstore.Store) { st.Add(p) })
		case "changelineitemquantity":
			id := strings.TrimSpace(action.ProductID)
			if id == "" {
				return View{}, fmt.Errorf("productId required: %w", domain.ErrValidation)
			}
			q := cartstore.QuantityFromValue(action.Quantity)
			steps = append(steps, func(st *cartstore.Store) { st.UpdateQuantity(id, q) })
		case "removelineitem":
			id := strings.TrimSpace(action.ProductID)
			if id == "" {
				return View{}, fmt.Errorf("productId required: %w", domain.ErrValidation)
			}
			steps = append(steps, func(st *cartstore.Store) { st.Remove(id) })
		case "clear":
			steps = append(steps, func(st *cartstore.Store) { st.Clear() })
		default:
			return View{}, fmt.Errorf("unsupported action %q: %w", action.Action, domain.ErrValidation)
		}
	}

	var v View
	owner.Do(func(st *cartstore.Store) {
		for _, apply := range steps {
			apply(st)
		}
		v = snapshot(st)
	})
	return v, nil
}

// Checkout renders the order message for the current cart and its deep link.
func (s *Service) Checkout(ctx context.Context, owner Owner, in CheckoutInput) (Inquiry, error) {
	var msg string
	owner.Do(func(st *cartstore.Store) {
		msg = message.Cart(st.Items(), st.Subtotal(), message.Contact{Name: in.Name, Note: in.Note})
	})
	inq, err := s.inquiry(msg)
	if err != nil {
		return Inquiry{}, fmt.Errorf("checkout link: %w", err)
	}
	s.logger.Infof("cart service: checkout message_bytes=%d", len(inq.Message))
	return inq, nil
}

// ProductInquiry is the "ask about this laptop" link for a detail page.
func (s *Service) ProductInquiry(p domain.Product) (Inquiry, error) {
	return s.inquiry(message.Product(p))
}

// Help is the generic "help me choose" link.
func (s *Service) Help() (Inquiry, error) {
	return s.inquiry(message.Help())
}

func (s *Service) inquiry(msg string) (Inquiry, error) {
	link, err := s.links.Link(msg)
	if err != nil {
		return Inquiry{}, err
	}
	return Inquiry{Message: msg, Link: link}, nil
}
