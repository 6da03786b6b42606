package store

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/reform.v1"

	xummpay "github.com/XRPL-Labs/xumm-payments"
)

// Store persists per-order attributes and the sign-request journal.
type Store struct {
	DB *reform.DB
}

func New(db *reform.DB) *Store {
	return &Store{DB: db}
}

var _ xummpay.AttributeService = (*Store)(nil)

func (s *Store) GetInt(ctx context.Context, order *xummpay.Order, name string) (int, error) {
	attr, err := s.get(ctx, order, name)
	if err == reform.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(attr.Value)
	if err != nil {
		return 0, errors.Wrapf(err, "Failed parse attribute %q", name)
	}
	return v, nil
}

func (s *Store) SetInt(ctx context.Context, order *xummpay.Order, name string, value int) error {
	return s.set(ctx, order, name, strconv.Itoa(value))
}

func (s *Store) GetIntList(ctx context.Context, order *xummpay.Order, name string) ([]int, error) {
	attr, err := s.get(ctx, order, name)
	if err == reform.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var values []int
	if err := json.Unmarshal([]byte(attr.Value), &values); err != nil {
		return nil, errors.Wrapf(err, "Failed parse attribute %q", name)
	}
	return values, nil
}

func (s *Store) SetIntList(ctx context.Context, order *xummpay.Order, name string, values []int) error {
	b, err := json.Marshal(values)
	if err != nil {
		return errors.Wrap(err, "Failed marshal")
	}
	return s.set(ctx, order, name, string(b))
}

func (s *Store) get(ctx context.Context, order *xummpay.Order, name string) (*OrderAttribute, error) {
	var attr OrderAttribute
	err := s.DB.WithContext(ctx).SelectOneTo(&attr, "WHERE order_guid = $1 AND name = $2", order.GUID.String(), name)
	if err == reform.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, errors.Wrap(err, "Failed get order attribute")
	}
	return &attr, nil
}

func (s *Store) set(ctx context.Context, order *xummpay.Order, name, value string) error {
	q := s.DB.WithContext(ctx)
	var attr OrderAttribute
	err := q.SelectOneTo(&attr, "WHERE order_guid = $1 AND name = $2", order.GUID.String(), name)
	if err == reform.ErrNoRows {
		return q.Insert(&OrderAttribute{
			OrderGUID: order.GUID.String(),
			Name:      name,
			Value:     value,
		})
	}
	if err != nil {
		return errors.Wrap(err, "Failed get order attribute")
	}
	attr.Value = value
	return q.Save(&attr)
}

// RecordSignRequest journals a submitted sign-request.
func (s *Store) RecordSignRequest(ctx context.Context, identifier string, orderGUID string, kind string, count int) error {
	return s.DB.WithContext(ctx).Insert(&SignRequest{
		Identifier: identifier,
		OrderGUID:  orderGUID,
		Kind:       kind,
		Count:      int64(count),
	})
}

// SetSignRequestStatus records the latest observed resolution of a
// journaled sign-request. Unknown identifiers are ignored.
func (s *Store) SetSignRequestStatus(ctx context.Context, identifier string, rawStatus string) error {
	q := s.DB.WithContext(ctx)
	sr := &SignRequest{Identifier: identifier}
	err := q.Reload(sr)
	if err == reform.ErrNoRows {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "Failed get sign request")
	}
	sr.RawStatus = rawStatus
	return q.Save(sr)
}

// SignRequestsByOrder lists the journaled sign-requests of an order,
// newest first.
func (s *Store) SignRequestsByOrder(ctx context.Context, orderGUID string) ([]*SignRequest, error) {
	structs, err := s.DB.WithContext(ctx).SelectAllFrom(SignRequestTable, "WHERE order_guid = $1 ORDER BY created_at DESC", orderGUID)
	if err != nil {
		return nil, errors.Wrap(err, "Failed list sign requests")
	}
	list := make([]*SignRequest, 0, len(structs))
	for _, st := range structs {
		list = append(list, st.(*SignRequest))
	}
	return list, nil
}

//go:generate reform

//reform:xumm.order_attributes
type OrderAttribute struct {
	ID        int64     `reform:"id,pk"`
	OrderGUID string    `reform:"order_guid"`
	Name      string    `reform:"name"`
	Value     string    `reform:"value"`
	CreatedAt time.Time `reform:"created_at"`
	UpdatedAt time.Time `reform:"updated_at"`
}

func (a *OrderAttribute) BeforeInsert() error {
	a.UpdatedAt = time.Now()
	a.CreatedAt = time.Now()
	return nil
}

func (a *OrderAttribute) BeforeUpdate() error {
	a.UpdatedAt = time.Now()
	return nil
}

//reform:xumm.sign_requests
type SignRequest struct {
	Identifier string    `reform:"identifier,pk"`
	OrderGUID  string    `reform:"order_guid"`
	Kind       string    `reform:"kind"`
	Count      int64     `reform:"count"`
	RawStatus  string    `reform:"raw_status"`
	CreatedAt  time.Time `reform:"created_at"`
	UpdatedAt  time.Time `reform:"updated_at"`
}

func (r *SignRequest) BeforeInsert() error {
	r.UpdatedAt = time.Now()
	r.CreatedAt = time.Now()
	return nil
}

func (r *SignRequest) BeforeUpdate() error {
	r.UpdatedAt = time.Now()
	return nil
}
