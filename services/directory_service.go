package services

import (
	"context"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"time"

	"lafamilia/models"
	"lafamilia/repositories"
	"lafamilia/utils"
)

const (
	membersInitial   = 6
	membersIncrement = 3
	membersMax       = 18

	clubsPerLoad   = 6
	awardsPerLoad  = 9
	reviewsPerLoad = 6

	defaultSpotlights = 3
)

var (
	popularityRank = map[string]int{"low": 1, "medium": 2, "high": 3}
	membershipRank = map[string]int{"member": 1, "bronze": 1, "silver": 2, "gold": 3}
)

type DirectoryService struct {
	content *repositories.ContentStore
}

func NewDirectoryService(content *repositories.ContentStore) *DirectoryService {
	return &DirectoryService{content: content}
}

// window returns how many items a "load more" list shows after loads extra
// requests, and whether another request would show more.
func window(total, initial, step, ceiling, loads int) (int, bool) {
	if loads < 0 {
		loads = 0
	}
	shown := initial + step*loads
	if ceiling > 0 && shown > ceiling {
		shown = ceiling
	}
	if shown > total {
		shown = total
	}
	more := shown < total
	if ceiling > 0 && shown >= ceiling {
		more = false
	}
	return shown, more
}

func batch[T any](items []T, initial, step, ceiling, loads int) models.Batch {
	shown, more := window(len(items), initial, step, ceiling, loads)
	return models.Batch{Items: items[:shown], Shown: shown, Total: len(items), HasMore: more}
}

// FilterMembers applies the directory search, facet filters and sort order.
func FilterMembers(members []models.Member, q models.MemberQuery) []models.Member {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		if term != "" && !utils.ContainsFold(term, m.Name, m.Description, m.Category, m.Location, m.FullDescription) {
			continue
		}
		if q.Category != "" && !strings.EqualFold(m.Category, q.Category) {
			continue
		}
		if q.Location != "" && !strings.EqualFold(m.Location, q.Location) {
			continue
		}
		if q.Size != "" && !strings.EqualFold(m.Size, q.Size) {
			continue
		}
		out = append(out, m)
	}

	rank := func(table map[string]int, v string) int { return table[strings.ToLower(v)] }
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch q.Sort {
		case "popularity-asc":
			return rank(popularityRank, a.Popularity) < rank(popularityRank, b.Popularity)
		case "popularity-desc":
			return rank(popularityRank, a.Popularity) > rank(popularityRank, b.Popularity)
		case "alphabetical-desc":
			return utils.CompareNames(a.Name, b.Name) > 0
		case "newest":
			return a.FoundingYear > b.FoundingYear
		case "membership-asc":
			return rank(membershipRank, a.MembershipLevel) < rank(membershipRank, b.MembershipLevel)
		case "membership-desc":
			return rank(membershipRank, a.MembershipLevel) > rank(membershipRank, b.MembershipLevel)
		default:
			return utils.CompareNames(a.Name, b.Name) < 0
		}
	})
	return out
}

func uniqueSorted(values []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func (s *DirectoryService) Members(ctx context.Context, q models.MemberQuery) (models.Batch, error) {
	members, err := s.content.Members(ctx)
	if err != nil {
		return models.Batch{}, err
	}
	return batch(FilterMembers(members, q), membersInitial, membersIncrement, membersMax, q.Loads), nil
}

func (s *DirectoryService) Member(ctx context.Context, id string) (*models.Member, error) {
	members, err := s.content.Members(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == id {
			return &members[i], nil
		}
	}
	return nil, models.NewNotFoundError("member", id)
}

func (s *DirectoryService) MemberFacets(ctx context.Context) (*models.MemberFacets, error) {
	members, err := s.content.Members(ctx)
	if err != nil {
		return nil, err
	}
	var categories, locations, sizes []string
	for _, m := range members {
		categories = append(categories, m.Category)
		locations = append(locations, m.Location)
		sizes = append(sizes, m.Size)
	}
	return &models.MemberFacets{
		Categories: uniqueSorted(categories),
		Locations:  uniqueSorted(locations),
		Sizes:      uniqueSorted(sizes),
	}, nil
}

// Spotlights picks up to count random Gold or Silver members.
func (s *DirectoryService) Spotlights(ctx context.Context, count int) ([]models.Member, error) {
	if count <= 0 {
		count = defaultSpotlights
	}
	members, err := s.content.Members(ctx)
	if err != nil {
		return nil, err
	}
	eligible := []models.Member{}
	for _, m := range members {
		if m.MembershipLevel == "Gold" || m.MembershipLevel == "Silver" {
			eligible = append(eligible, m)
		}
	}
	rand.Shuffle(len(eligible), func(i, j int) { eligible[i], eligible[j] = eligible[j], eligible[i] })
	if len(eligible) > count {
		eligible = eligible[:count]
	}
	return eligible, nil
}

func (s *DirectoryService) Clubs(ctx context.Context, q models.ListQuery) (models.Batch, error) {
	clubs, err := s.content.Clubs(ctx)
	if err != nil {
		return models.Batch{}, err
	}
	term := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]models.Club, 0, len(clubs))
	for _, c := range clubs {
		if term == "" || utils.ContainsFold(term, c.Name, c.Description) {
			out = append(out, c)
		}
	}
	switch q.Sort {
	case "name-asc":
		sort.SliceStable(out, func(i, j int) bool { return utils.CompareNames(out[i].Name, out[j].Name) < 0 })
	case "name-desc":
		sort.SliceStable(out, func(i, j int) bool { return utils.CompareNames(out[i].Name, out[j].Name) > 0 })
	case "members-desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Details.MembersCount > out[j].Details.MembersCount })
	case "members-asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Details.MembersCount < out[j].Details.MembersCount })
	}
	return batch(out, clubsPerLoad, clubsPerLoad, 0, q.Loads), nil
}

// nameSuggestions keeps the distinct names containing query, in order, up to
// the suggestion limit. Queries shorter than two characters match nothing.
func nameSuggestions(query string, names []string) []string {
	term := strings.ToLower(strings.TrimSpace(query))
	out := []string{}
	if len(term) < 2 {
		return out
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] || !utils.ContainsFold(term, n) {
			continue
		}
		seen[n] = true
		out = append(out, n)
		if len(out) == suggestionLimit {
			break
		}
	}
	return out
}

func (s *DirectoryService) ClubSuggestions(ctx context.Context, query string) ([]string, error) {
	clubs, err := s.content.Clubs(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(clubs))
	for _, c := range clubs {
		names = append(names, c.Name)
	}
	return nameSuggestions(query, names), nil
}

func (s *DirectoryService) Club(ctx context.Context, id string) (*models.Club, error) {
	clubs, err := s.content.Clubs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clubs {
		if clubs[i].ID == id {
			return &clubs[i], nil
		}
	}
	return nil, models.NewNotFoundError("club", id)
}

// Events filters by free-text search and by an event type keyword, which is
// matched against the event name.
func (s *DirectoryService) Events(ctx context.Context, q models.ListQuery) ([]models.Event, error) {
	events, err := s.content.Events(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(q.Search))
	kind := strings.ToLower(strings.TrimSpace(q.Type))
	out := []models.Event{}
	for _, e := range events {
		if term != "" && !utils.ContainsFold(term, e.Name, e.Description, e.Location) {
			continue
		}
		if kind != "" && !utils.ContainsFold(kind, e.Name) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *DirectoryService) Event(ctx context.Context, id string) (*models.Event, error) {
	events, err := s.content.Events(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, models.NewNotFoundError("event", id)
}

func (s *DirectoryService) BlogPosts(ctx context.Context, q models.ListQuery) ([]models.BlogPost, error) {
	posts, err := s.content.BlogPosts(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(q.Search))
	out := []models.BlogPost{}
	for _, p := range posts {
		if term != "" && !utils.ContainsFold(term, p.Title, p.Excerpt, p.Author) {
			continue
		}
		if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *DirectoryService) BlogPost(ctx context.Context, id string) (*models.BlogPost, error) {
	posts, err := s.content.BlogPosts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, models.NewNotFoundError("blog post", id)
}

func (s *DirectoryService) News(ctx context.Context, featuredOnly bool) ([]models.NewsArticle, error) {
	articles, err := s.content.News(ctx)
	if err != nil {
		return nil, err
	}
	if !featuredOnly {
		return articles, nil
	}
	out := []models.NewsArticle{}
	for _, a := range articles {
		if a.IsFeaturedOnHomepage {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *DirectoryService) NewsArticle(ctx context.Context, id string) (*models.NewsArticle, error) {
	articles, err := s.content.News(ctx)
	if err != nil {
		return nil, err
	}
	for i := range articles {
		if articles[i].ID == id {
			return &articles[i], nil
		}
	}
	return nil, models.NewNotFoundError("news article", id)
}

func (s *DirectoryService) Board(ctx context.Context) (models.Board, error) {
	return s.content.Board(ctx)
}

func (s *DirectoryService) Discover(ctx context.Context) ([]models.DiscoverItem, error) {
	return s.content.Discover(ctx)
}

// FlattenAwards pairs every award with the member that received it.
func FlattenAwards(members []models.Member) []models.MemberAward {
	out := []models.MemberAward{}
	for _, m := range members {
		for _, a := range m.Awards {
			out = append(out, models.MemberAward{MemberID: m.ID, MemberName: m.Name, MemberImg: m.ImgSrc, Award: a})
		}
	}
	return out
}

// AwardSuggestions offers member and award names for the award search box.
func (s *DirectoryService) AwardSuggestions(ctx context.Context, query string) ([]string, error) {
	members, err := s.content.Members(ctx)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, a := range FlattenAwards(members) {
		names = append(names, a.MemberName, a.Award.Name)
	}
	return nameSuggestions(query, names), nil
}

func FilterAwards(awards []models.MemberAward, q models.AwardQuery) []models.MemberAward {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]models.MemberAward, 0, len(awards))
	for _, a := range awards {
		if term != "" && !utils.ContainsFold(term, a.MemberName, a.Award.Name, a.Award.Issuer) {
			continue
		}
		if q.Year != "" && q.Year != "all" && strconv.Itoa(a.Award.Year) != q.Year {
			continue
		}
		if q.MemberID != "" && a.MemberID != q.MemberID {
			continue
		}
		out = append(out, a)
	}
	switch q.Sort {
	case "year-desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Award.Year > out[j].Award.Year })
	case "year-asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Award.Year < out[j].Award.Year })
	case "member-name":
		sort.SliceStable(out, func(i, j int) bool { return utils.CompareNames(out[i].MemberName, out[j].MemberName) < 0 })
	case "award-name":
		sort.SliceStable(out, func(i, j int) bool { return utils.CompareNames(out[i].Award.Name, out[j].Award.Name) < 0 })
	}
	return out
}

func (s *DirectoryService) Awards(ctx context.Context, q models.AwardQuery) (models.Batch, error) {
	members, err := s.content.Members(ctx)
	if err != nil {
		return models.Batch{}, err
	}
	return batch(FilterAwards(FlattenAwards(members), q), awardsPerLoad, awardsPerLoad, 0, q.Loads), nil
}

// AwardFacets lists award years newest first and award-winning members by
// name.
func (s *DirectoryService) AwardFacets(ctx context.Context) (*models.AwardFacets, error) {
	members, err := s.content.Members(ctx)
	if err != nil {
		return nil, err
	}
	seenYear := map[int]bool{}
	facets := &models.AwardFacets{Years: []int{}, Members: []models.MemberRef{}}
	for _, m := range members {
		if len(m.Awards) == 0 {
			continue
		}
		facets.Members = append(facets.Members, models.MemberRef{ID: m.ID, Name: m.Name})
		for _, a := range m.Awards {
			if !seenYear[a.Year] {
				seenYear[a.Year] = true
				facets.Years = append(facets.Years, a.Year)
			}
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(facets.Years)))
	sort.SliceStable(facets.Members, func(i, j int) bool {
		return utils.CompareNames(facets.Members[i].Name, facets.Members[j].Name) < 0
	})
	return facets, nil
}

func reviewTime(date string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "January 2, 2006"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FlattenReviews pairs every review with its member, newest first.
func FlattenReviews(members []models.Member) []models.MemberReview {
	out := []models.MemberReview{}
	for _, m := range members {
		for _, r := range m.Reviews {
			out = append(out, models.MemberReview{MemberID: m.ID, MemberName: m.Name, MemberImg: m.ImgSrc, Review: r})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return reviewTime(out[i].Review.Date).After(reviewTime(out[j].Review.Date))
	})
	return out
}

func (s *DirectoryService) Reviews(ctx context.Context, loads int) (models.Batch, error) {
	members, err := s.content.Members(ctx)
	if err != nil {
		return models.Batch{}, err
	}
	return batch(FlattenReviews(members), reviewsPerLoad, reviewsPerLoad, 0, loads), nil
}
