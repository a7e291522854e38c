package services

import (
	"time"

	"github.com/camden-git/filmcatalogbackend/database"
	"github.com/camden-git/filmcatalogbackend/models"
)

// Wire-level response shapes and the pure transforms that produce them.
// Every mapper tolerates partially populated aggregates: a collection that
// was never fetched renders as an empty list and missing optional fields
// render as null, never as a panic.

// LookupView is the wire shape shared by genres, studios, countries,
// languages and roles.
type LookupView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// PosterView is the wire shape of a movie's optional poster
type PosterView struct {
	ID   uint   `json:"id"`
	Link string `json:"link"`
}

// ThemeView is the wire shape of a free-text theme tag
type ThemeView struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// CastView is one cast credit with its actor flattened in
type CastView struct {
	ID        uint    `json:"id"`
	ActorID   uint    `json:"actorId"`
	ActorName string  `json:"actorName"`
	Role      string  `json:"role"`
	ImagePath *string `json:"imagePath"`
}

// CrewView is one crew credit with its person and role lookup flattened in
type CrewView struct {
	PersonID   uint   `json:"personId"`
	PersonName string `json:"personName"`
	RoleID     uint   `json:"roleId"`
	RoleName   string `json:"roleName"`
}

// ReleaseView is one regional release; country is null when unset
type ReleaseView struct {
	ID      uint        `json:"id"`
	Country *LookupView `json:"country"`
	Date    *string     `json:"date"`
	Type    string      `json:"type"`
	Rating  string      `json:"rating"`
}

// MovieView is the full movie aggregate response shape
type MovieView struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	ReleaseYear *int          `json:"releaseYear"`
	Tagline     *string       `json:"tagline"`
	Description *string       `json:"description"`
	Minutes     *int          `json:"minutes"`
	Rating      *float64      `json:"rating"`
	Poster      *PosterView   `json:"poster"`
	Themes      []ThemeView   `json:"themes"`
	Cast        []CastView    `json:"cast"`
	Crew        []CrewView    `json:"crew"`
	Releases    []ReleaseView `json:"releases"`
	Genres      []LookupView  `json:"genres"`
	Studios     []LookupView  `json:"studios"`
	Countries   []LookupView  `json:"countries"`
	Languages   []LookupView  `json:"languages"`
}

// MoviePreviewView is the reduced movie projection for list, search and
// random endpoints
type MoviePreviewView struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	ReleaseYear *int        `json:"releaseYear"`
	Description *string     `json:"description"`
	Rating      *float64    `json:"rating"`
	Poster      *PosterView `json:"poster"`
}

// SearchResult is one entry in the unified search response
type SearchResult struct {
	ID       uint    `json:"id"`
	Kind     string  `json:"kind"`
	Title    string  `json:"title"`
	ImageURL *string `json:"imageUrl"`
}

// AwardView is the wire shape of one oscar award fact
type AwardView struct {
	ID           uint   `json:"id"`
	YearFilm     string `json:"yearFilm"`
	YearCeremony string `json:"yearCeremony"`
	Category     string `json:"category"`
	Name         string `json:"name"`
	Film         string `json:"film"`
	Winner       bool   `json:"winner"`
	ActorID      *uint  `json:"actorId"`
	MovieID      *uint  `json:"movieId"`
}

// ReviewView is the wire shape of one critic review
type ReviewView struct {
	ID            uint    `json:"id"`
	MovieID       uint    `json:"movieId"`
	CriticName    string  `json:"criticName"`
	TopCritic     bool    `json:"topCritic"`
	PublisherName string  `json:"publisherName"`
	ReviewType    string  `json:"reviewType"`
	ReviewScore   string  `json:"reviewScore"`
	ReviewDate    *string `json:"reviewDate"`
	ReviewContent string  `json:"reviewContent"`
}

const dateLayout = "2006-01-02"

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// ToMovieView converts an assembled aggregate into the response shape
func ToMovieView(m *models.Movie) MovieView {
	view := MovieView{
		ID:          m.ID,
		Name:        m.Name,
		ReleaseYear: m.ReleaseYear,
		Tagline:     m.Tagline,
		Description: m.Description,
		Minutes:     m.Minutes,
		Rating:      m.Rating,
		Poster:      toPosterView(m.Poster),
		Themes:      make([]ThemeView, 0, len(m.Themes)),
		Cast:        make([]CastView, 0, len(m.Cast)),
		Crew:        make([]CrewView, 0, len(m.Crew)),
		Releases:    make([]ReleaseView, 0, len(m.Releases)),
		Genres:      toGenreViews(m.Genres),
		Studios:     toStudioViews(m.Studios),
		Countries:   toCountryViews(m.Countries),
		Languages:   toLanguageViews(m.Languages),
	}

	for _, t := range m.Themes {
		view.Themes = append(view.Themes, ThemeView{ID: t.ID, Text: t.Text})
	}
	for _, c := range m.Cast {
		view.Cast = append(view.Cast, toCastView(c))
	}
	for _, c := range m.Crew {
		view.Crew = append(view.Crew, toCrewView(c))
	}
	for _, r := range m.Releases {
		view.Releases = append(view.Releases, toReleaseView(r))
	}
	return view
}

func toPosterView(p *models.Poster) *PosterView {
	if p == nil {
		return nil
	}
	return &PosterView{ID: p.ID, Link: p.Link}
}

func toCastView(c models.CastCredit) CastView {
	view := CastView{ID: c.ID, ActorID: c.ActorID, Role: c.Role}
	if c.Actor != nil {
		view.ActorName = c.Actor.Name
		if c.Actor.Info != nil {
			view.ImagePath = c.Actor.Info.ImagePath
		}
	}
	return view
}

func toCrewView(c models.CrewCredit) CrewView {
	view := CrewView{PersonID: c.PersonID, RoleID: c.RoleID}
	if c.Person != nil {
		view.PersonName = c.Person.Name
	}
	if c.Role != nil {
		view.RoleName = c.Role.Name
	}
	return view
}

func toReleaseView(r models.Release) ReleaseView {
	view := ReleaseView{
		ID:     r.ID,
		Date:   formatDate(r.Date),
		Type:   r.Type,
		Rating: r.Rating,
	}
	if r.Country != nil {
		view.Country = &LookupView{ID: r.Country.ID, Name: r.Country.Name}
	}
	return view
}

func toGenreViews(genres []models.Genre) []LookupView {
	views := make([]LookupView, 0, len(genres))
	for _, g := range genres {
		views = append(views, LookupView{ID: g.ID, Name: g.Name})
	}
	return views
}

func toStudioViews(studios []models.Studio) []LookupView {
	views := make([]LookupView, 0, len(studios))
	for _, s := range studios {
		views = append(views, LookupView{ID: s.ID, Name: s.Name})
	}
	return views
}

func toCountryViews(countries []models.Country) []LookupView {
	views := make([]LookupView, 0, len(countries))
	for _, c := range countries {
		views = append(views, LookupView{ID: c.ID, Name: c.Name})
	}
	return views
}

func toLanguageViews(languages []models.Language) []LookupView {
	views := make([]LookupView, 0, len(languages))
	for _, l := range languages {
		views = append(views, LookupView{ID: l.ID, Name: l.Name})
	}
	return views
}

// ToPreviewView converts the narrow preview projection into the response
// shape, folding the nullable poster columns into an optional object
func ToPreviewView(p database.MoviePreview) MoviePreviewView {
	view := MoviePreviewView{
		ID:          p.ID,
		Name:        p.Name,
		ReleaseYear: p.ReleaseYear,
		Description: p.Description,
		Rating:      p.Rating,
	}
	if p.PosterID != nil && p.PosterLink != nil {
		view.Poster = &PosterView{ID: *p.PosterID, Link: *p.PosterLink}
	}
	return view
}

// ToPreviewViews converts a list of preview projections
func ToPreviewViews(previews []database.MoviePreview) []MoviePreviewView {
	views := make([]MoviePreviewView, 0, len(previews))
	for _, p := range previews {
		views = append(views, ToPreviewView(p))
	}
	return views
}

// ToAwardViews converts award facts into the response shape
func ToAwardViews(awards []models.OscarAward) []AwardView {
	views := make([]AwardView, 0, len(awards))
	for _, a := range awards {
		views = append(views, AwardView{
			ID:           a.ID,
			YearFilm:     a.YearFilm,
			YearCeremony: a.YearCeremony,
			Category:     a.Category,
			Name:         a.Name,
			Film:         a.Film,
			Winner:       a.Winner,
			ActorID:      a.ActorID,
			MovieID:      a.MovieID,
		})
	}
	return views
}

// ToReviewViews converts critic reviews into the response shape
func ToReviewViews(reviews []models.ReviewMovie) []ReviewView {
	views := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, ReviewView{
			ID:            r.ID,
			MovieID:       r.MovieID,
			CriticName:    r.CriticName,
			TopCritic:     r.TopCritic,
			PublisherName: r.PublisherName,
			ReviewType:    r.ReviewType,
			ReviewScore:   r.ReviewScore,
			ReviewDate:    formatDate(r.ReviewDate),
			ReviewContent: r.ReviewContent,
		})
	}
	return views
}
