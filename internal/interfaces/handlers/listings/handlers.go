package listings

import (
	"errors"

	"carmarket-backend/internal/application/filters"
	listsvc "carmarket-backend/internal/application/listings"
	"carmarket-backend/internal/domain"
	"carmarket-backend/internal/middleware"
	"carmarket-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service *listsvc.Service
	Filters *filters.Service
}

func searchOptions(c *fiber.Ctx) (listsvc.SearchOptions, error) {
	policy, err := listsvc.ParsePolicy(c.Query("policy"))
	if err != nil {
		return listsvc.SearchOptions{}, err
	}
	return listsvc.SearchOptions{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", listsvc.DefaultLimit),
		Policy: policy,
	}, nil
}

func (h *Handlers) search(c *fiber.Ctx, crit domain.Criteria) error {
	opts, err := searchOptions(c)
	if err != nil {
		return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
	}
	res := h.Service.Search(c.UserContext(), crit, opts)
	meta := response.SearchMeta{
		State:      string(res.State),
		Total:      res.Total,
		Page:       res.Page,
		Limit:      res.Limit,
		TotalPages: res.TotalPages,
		Sources:    res.Sources,
		Filters:    crit,
	}
	if res.State == listsvc.StateFailed {
		log.Warn().Str("trace_id", middleware.GetTraceID(c)).Str("error", res.Error).Msg("Listing search failed")
		return response.Error(c, "Listings could not be loaded", fiber.StatusBadGateway, meta)
	}
	return response.Success(c, "Listings fetched successfully", res.Listings, meta)
}

// GET /api/v1/listings/search: filters with the device's active criteria
func (h *Handlers) SearchActive(c *fiber.Ctx) error {
	crit, err := h.Filters.Active(c.UserContext(), middleware.DeviceID(c))
	if err != nil {
		return err
	}
	return h.search(c, crit)
}

// POST /api/v1/listings/search: filters with the criteria in the body
func (h *Handlers) Search(c *fiber.Ctx) error {
	var crit domain.Criteria
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&crit); err != nil {
			return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
		}
	}
	return h.search(c, crit.Normalize())
}

func listingError(c *fiber.Ctx, err error) error {
	var verr *listsvc.ValidationError
	switch {
	case errors.As(err, &verr):
		return response.Error(c, "Invalid listing", fiber.StatusBadRequest, verr.Fields)
	case errors.Is(err, listsvc.ErrInvalidVIN):
		return response.Error(c, err.Error(), fiber.StatusBadRequest, fiber.Map{"vin": err.Error()})
	case errors.Is(err, listsvc.ErrListingNotFound):
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	default:
		return err
	}
}

// POST /api/v1/listings: seller fields default to the signed-in user
func (h *Handlers) Create(c *fiber.Ctx) error {
	var in listsvc.ListingInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	if u := middleware.GetUser(c); u != nil {
		in.SellerID = u.ID
		if in.SellerName == "" {
			in.SellerName = u.FirstName + " " + u.LastName
		}
		if in.SellerPhone == "" {
			in.SellerPhone = u.Phone
		}
	}
	listing, err := h.Service.Create(c.UserContext(), in)
	if err != nil {
		return listingError(c, err)
	}
	return response.SuccessCreated(c, "Listing created successfully", listing, nil)
}

// GET /api/v1/listings: internal listings only
func (h *Handlers) List(c *fiber.Ctx) error {
	listings, err := h.Service.List(c.UserContext())
	if err != nil {
		return err
	}
	return response.Success(c, "Listings fetched successfully", listings, response.Count(len(listings)))
}

// GET /api/v1/listings/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	listing, err := h.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return listingError(c, err)
	}
	return response.Success(c, "Listing fetched successfully", listing, nil)
}

// ownListing loads the listing and checks the signed-in user is its seller.
func (h *Handlers) ownListing(c *fiber.Ctx) (*domain.Listing, error) {
	listing, err := h.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return nil, listingError(c, err)
	}
	u := middleware.GetUser(c)
	if listing.SellerID != "" && (u == nil || u.ID != listing.SellerID) {
		return nil, response.Error(c, "Only the seller may change this listing", fiber.StatusForbidden, nil)
	}
	return listing, nil
}

// PUT /api/v1/listings/:id
func (h *Handlers) Update(c *fiber.Ctx) error {
	var in listsvc.ListingInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	listing, err := h.ownListing(c)
	if listing == nil {
		return err
	}
	in.SellerID = listing.SellerID
	updated, err := h.Service.Update(c.UserContext(), listing.ID, in)
	if err != nil {
		return listingError(c, err)
	}
	return response.Success(c, "Listing updated successfully", updated, nil)
}

// DELETE /api/v1/listings/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	listing, err := h.ownListing(c)
	if listing == nil {
		return err
	}
	if err := h.Service.Delete(c.UserContext(), listing.ID); err != nil {
		return listingError(c, err)
	}
	return response.Success(c, "Listing deleted successfully", fiber.Map{"id": listing.ID}, nil)
}
