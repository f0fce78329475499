package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"laafitech/internal/domain"
	"laafitech/internal/infra"
	"laafitech/internal/predictor"
)

// memStore is an in-memory stand-in for every repository the handlers use.
type memStore struct {
	mu          sync.Mutex
	campaigns   map[int64]*domain.Campaign
	communities map[int64]*domain.Community
	donors      map[int64]*domain.Donor
	donations   []domain.Donation
	metrics     []domain.ImpactMetric
	lastUpdate  *domain.CampaignUpdate
	failWith    error
}

func newMemStore() *memStore {
	return &memStore{
		campaigns:   map[int64]*domain.Campaign{},
		communities: map[int64]*domain.Community{},
		donors:      map[int64]*domain.Donor{},
	}
}

func newTestApp(s *memStore) *App {
	app := &App{
		Config:      infra.Config{AppName: "LaafiTech", AppVersion: "test"},
		Logger:      zerolog.Nop(),
		Campaigns:   campaignStore{s},
		Communities: communityStore{s},
		Donors:      donorStore{s},
		Donations:   donationStore{s},
		Impact:      impactStore{s},
		Analytics:   analyticsStore{s},
	}
	app.Matcher = predictor.NewMatcher(donorStore{s}, campaignStore{s})
	return app
}

type campaignStore struct{ s *memStore }

func (c campaignStore) List(_ context.Context, f domain.CampaignFilter) ([]domain.Campaign, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	out := []domain.Campaign{}
	for _, v := range c.s.campaigns {
		if f.Status == nil || v.Status == *f.Status {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c campaignStore) ListActive(ctx context.Context) ([]domain.Campaign, error) {
	st := domain.CampaignStatusActive
	return c.List(ctx, domain.CampaignFilter{Status: &st})
}

func (c campaignStore) GetByID(_ context.Context, id int64) (*domain.Campaign, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.failWith != nil {
		return nil, c.s.failWith
	}
	v, ok := c.s.campaigns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (c campaignStore) Create(_ context.Context, in domain.CampaignCreate) (*domain.Campaign, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	id := int64(len(c.s.campaigns) + 1)
	community := in.CommunityID
	v := &domain.Campaign{ID: id, Title: in.Title, GoalAmount: in.GoalAmount, CommunityID: &community, Status: domain.CampaignStatusDraft}
	c.s.campaigns[id] = v
	cp := *v
	return &cp, nil
}

func (c campaignStore) Update(ctx context.Context, id int64, u domain.CampaignUpdate) (*domain.Campaign, error) {
	c.s.mu.Lock()
	c.s.lastUpdate = &u
	v, ok := c.s.campaigns[id]
	if ok && u.Title != nil {
		v.Title = *u.Title
	}
	c.s.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c.GetByID(ctx, id)
}

func (c campaignStore) bump(id int64, f func(*domain.Campaign)) (*domain.Campaign, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	v, ok := c.s.campaigns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	f(v)
	cp := *v
	return &cp, nil
}

func (c campaignStore) RecordView(_ context.Context, id int64) (*domain.Campaign, error) {
	return c.bump(id, func(v *domain.Campaign) { v.Views++ })
}

func (c campaignStore) RecordShare(_ context.Context, id int64) (*domain.Campaign, error) {
	return c.bump(id, func(v *domain.Campaign) { v.Shares++ })
}

func (c campaignStore) Publish(ctx context.Context, id int64) (*domain.Campaign, error) {
	cur, err := c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur.Status != domain.CampaignStatusDraft {
		return nil, domain.ErrInvalidState
	}
	return c.bump(id, func(v *domain.Campaign) { v.Status = domain.CampaignStatusActive })
}

func (c campaignStore) Delete(_ context.Context, id int64) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.campaigns[id]; !ok {
		return domain.ErrNotFound
	}
	delete(c.s.campaigns, id)
	return nil
}

type communityStore struct{ s *memStore }

func (c communityStore) List(context.Context, domain.CommunityFilter) ([]domain.Community, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	out := []domain.Community{}
	for _, v := range c.s.communities {
		out = append(out, *v)
	}
	return out, nil
}

func (c communityStore) GetByID(_ context.Context, id int64) (*domain.Community, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	v, ok := c.s.communities[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (c communityStore) Create(_ context.Context, in domain.CommunityCreate) (*domain.Community, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	id := int64(len(c.s.communities) + 1)
	v := &domain.Community{ID: id, Name: in.Name, Country: in.Country, Region: in.Region, GirlsCount: in.GirlsCount}
	c.s.communities[id] = v
	cp := *v
	return &cp, nil
}

func (c communityStore) Update(ctx context.Context, id int64, u domain.CommunityUpdate) (*domain.Community, error) {
	c.s.mu.Lock()
	v, ok := c.s.communities[id]
	if ok && u.PovertyIndex != nil {
		v.PovertyIndex = u.PovertyIndex
	}
	c.s.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c.GetByID(ctx, id)
}

func (c communityStore) Delete(_ context.Context, id int64) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.communities[id]; !ok {
		return domain.ErrNotFound
	}
	delete(c.s.communities, id)
	return nil
}

type donorStore struct{ s *memStore }

func (d donorStore) List(context.Context, domain.Page) ([]domain.Donor, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	out := []domain.Donor{}
	for _, v := range d.s.donors {
		out = append(out, *v)
	}
	return out, nil
}

func (d donorStore) GetByID(_ context.Context, id int64) (*domain.Donor, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	v, ok := d.s.donors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (d donorStore) Exists(_ context.Context, id int64) (bool, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	_, ok := d.s.donors[id]
	return ok, nil
}

func (d donorStore) GetProfile(ctx context.Context, id int64) (*domain.DonorProfile, error) {
	v, err := d.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Profile == nil {
		return nil, domain.ErrNotFound
	}
	return v.Profile, nil
}

func (d donorStore) Create(_ context.Context, in domain.DonorCreate) (*domain.Donor, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	for _, v := range d.s.donors {
		if v.Email == in.Email {
			return nil, domain.ErrConflict
		}
	}
	id := int64(len(d.s.donors) + 1)
	v := &domain.Donor{
		User:    domain.User{ID: id, Email: in.Email, FullName: in.FullName, Role: domain.UserRoleDonor, IsActive: true},
		Profile: &domain.DonorProfile{UserID: id, Causes: in.Causes, PreferredRegions: in.PreferredRegions, BudgetRange: in.BudgetRange},
	}
	d.s.donors[id] = v
	cp := *v
	return &cp, nil
}

func (d donorStore) UpdateProfile(ctx context.Context, id int64, u domain.DonorProfileUpdate) (*domain.Donor, error) {
	d.s.mu.Lock()
	v, ok := d.s.donors[id]
	if ok {
		if v.Profile == nil {
			v.Profile = &domain.DonorProfile{UserID: id}
		}
		if u.Causes != nil {
			v.Profile.Causes = u.Causes
		}
		if u.BudgetRange != nil {
			v.Profile.BudgetRange = u.BudgetRange
		}
	}
	d.s.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d.GetByID(ctx, id)
}

type donationStore struct{ s *memStore }

func (d donationStore) Record(_ context.Context, in domain.DonationCreate) (*domain.Donation, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	c, ok := d.s.campaigns[in.CampaignID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.CurrentAmount += in.Amount
	v := domain.Donation{
		ID:            int64(len(d.s.donations) + 1),
		CampaignID:    in.CampaignID,
		DonorID:       in.DonorID,
		Amount:        in.Amount,
		Currency:      in.Currency,
		Status:        domain.DonationStatusCompleted,
		TransactionID: "tx-test",
		IsAnonymous:   in.IsAnonymous,
	}
	d.s.donations = append(d.s.donations, v)
	return &v, nil
}

func (d donationStore) ListByCampaign(_ context.Context, id int64, _ int) ([]domain.Donation, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	out := []domain.Donation{}
	for _, v := range d.s.donations {
		if v.CampaignID == id {
			out = append(out, v)
		}
	}
	return out, nil
}

type impactStore struct{ s *memStore }

func (m impactStore) Create(_ context.Context, in domain.ImpactMetricCreate) (*domain.ImpactMetric, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.campaigns[in.CampaignID]; !ok {
		return nil, domain.ErrNotFound
	}
	v := domain.ImpactMetric{ID: int64(len(m.s.metrics) + 1), CampaignID: in.CampaignID, MetricType: in.MetricType, Value: in.Value, Unit: in.Unit}
	m.s.metrics = append(m.s.metrics, v)
	return &v, nil
}

func (m impactStore) ListByCampaign(_ context.Context, id int64) ([]domain.ImpactMetric, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	out := []domain.ImpactMetric{}
	for _, v := range m.s.metrics {
		if v.CampaignID == id {
			out = append(out, v)
		}
	}
	return out, nil
}

type analyticsStore struct{ s *memStore }

func (a analyticsStore) CountCommunities(context.Context) (int, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	return len(a.s.communities), nil
}

func (a analyticsStore) CountActiveCampaigns(context.Context) (int, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	n := 0
	for _, c := range a.s.campaigns {
		if c.IsActive() {
			n++
		}
	}
	return n, nil
}

func (a analyticsStore) TotalFunding(context.Context) (float64, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	var total float64
	for _, d := range a.s.donations {
		total += d.Amount
	}
	return total, nil
}

func (a analyticsStore) SumImpactMetric(_ context.Context, metricType string) (float64, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	var total float64
	for _, m := range a.s.metrics {
		if m.MetricType == metricType {
			total += m.Value
		}
	}
	return total, nil
}

func (a analyticsStore) AverageFundingRatio(context.Context) (float64, error) {
	return 0.5, a.s.failWith
}

func (a analyticsStore) TopDonors(context.Context, int) ([]domain.DonorTotal, error) {
	return nil, nil
}

func (a analyticsStore) TrendingCampaigns(context.Context, int) ([]domain.TrendingCampaign, error) {
	return []domain.TrendingCampaign{{CampaignID: 1, Title: "Pads", Views: 10}}, nil
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

// serve runs h with an optional chi id parameter and JSON body.
func serve(t *testing.T, h http.HandlerFunc, method, target, id string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, rr, &payload)
	return payload.Error.Code
}
