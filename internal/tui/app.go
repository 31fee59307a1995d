package tui

import (
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/requestarr/requestarr/internal/domain"
	"github.com/requestarr/requestarr/internal/service"
	"github.com/requestarr/requestarr/internal/store"
	"github.com/requestarr/requestarr/internal/stream"
	"github.com/requestarr/requestarr/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateRequestModal
	StateInstancePicker
	StateHelp
)

// ViewTab identifies the active top-level view
type ViewTab int

const (
	ViewDiscover ViewTab = iota
	ViewMovies
	ViewTV
	ViewSearch
)

// Stream and carousel names
const (
	streamMovies = "movies"
	streamTV     = "tv"

	carouselTrending      = "trending"
	carouselPopularMovies = "popular_movies"
	carouselPopularTV     = "popular_tv"
	carouselRecommended   = "recommended"
)

// discoverRowOrder fixes the vertical order of the discover carousels.
var discoverRowOrder = []string{
	carouselTrending,
	carouselPopularMovies,
	carouselPopularTV,
	carouselRecommended,
}

var carouselTitles = map[string]string{
	carouselTrending:      "Trending",
	carouselPopularMovies: "Popular Movies",
	carouselPopularTV:     "Popular TV",
	carouselRecommended:   "Recommended For You",
}

// Model is the main Bubble Tea model for the application
type Model struct {
	State ApplicationState
	Tab   ViewTab
	Ready bool

	// Services
	Discovery domain.DiscoveryRepository
	Requests  *service.Requests
	Selection *service.Selection
	Hidden    *service.HiddenMedia
	Settings  domain.SettingsRepository
	Cards     *service.CardSync
	Cache     *store.Store

	// Streams
	MovieStream *stream.Listing
	TVStream    *stream.Listing
	Carousels   map[string]*stream.Carousel

	// UI Components
	MovieGrid  *components.Grid
	TVGrid     *components.Grid
	SearchGrid *components.Grid
	Rows       map[string]*components.CarouselRow
	Modal      components.RequestModal
	Picker     components.InstancePicker
	SearchBar  components.SearchBar

	// Discover view: which carousel row has focus
	FocusedRow int

	// Search accumulation across the per-kind queries of one generation
	searchHits  []domain.MediaCard
	searchQuery string

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusText   string
	StatusIsErr  bool
	SpinnerFrame int

	logger *slog.Logger
}

// Deps bundles everything the model needs.
type Deps struct {
	Discovery domain.DiscoveryRepository
	Requests  *service.Requests
	Selection *service.Selection
	Hidden    *service.HiddenMedia
	Settings  domain.SettingsRepository
	Cards     *service.CardSync
	Cache     *store.Store
	PageSize  int
	Columns   int
	Logger    *slog.Logger
}

// NewModel creates the application model and wires streams to their rendering
// surfaces and the card sync fan-out.
func NewModel(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.PageSize <= 0 {
		deps.PageSize = 20
	}
	if deps.Columns <= 0 {
		deps.Columns = 4
	}

	m := Model{
		State:     StateBrowsing,
		Tab:       ViewDiscover,
		Discovery: deps.Discovery,
		Requests:  deps.Requests,
		Selection: deps.Selection,
		Hidden:    deps.Hidden,
		Settings:  deps.Settings,
		Cards:     deps.Cards,
		Cache:     deps.Cache,
		Modal:     components.NewRequestModal(),
		Picker:    components.NewInstancePicker(),
		SearchBar: components.NewSearchBar(),
		logger:    deps.Logger,
	}

	m.MovieGrid = components.NewGrid("movies", deps.Columns)
	m.TVGrid = components.NewGrid("tv", deps.Columns)
	m.SearchGrid = components.NewGrid("search", deps.Columns)

	m.MovieStream = stream.NewListing(streamMovies, m.MovieGrid, deps.PageSize, deps.Logger)
	m.TVStream = stream.NewListing(streamTV, m.TVGrid, deps.PageSize, deps.Logger)
	m.MovieStream.SetVisibility(deps.Hidden.Visible)
	m.TVStream.SetVisibility(deps.Hidden.Visible)

	m.Rows = make(map[string]*components.CarouselRow, len(discoverRowOrder))
	m.Carousels = make(map[string]*stream.Carousel, len(discoverRowOrder))
	for _, name := range discoverRowOrder {
		row := components.NewCarouselRow(carouselTitles[name])
		m.Rows[name] = row
		c := stream.NewCarousel(name, row, deps.PageSize, deps.Logger)
		c.SetVisibility(deps.Hidden.Visible)
		m.Carousels[name] = c
	}

	// Every mounted surface receives card state syncs.
	deps.Cards.Register(streamMovies, m.MovieGrid)
	deps.Cards.Register(streamTV, m.TVGrid)
	deps.Cards.Register("search", m.SearchGrid)
	for name, row := range m.Rows {
		deps.Cards.Register(name, row)
	}

	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadSelectionCmd(m.Selection),
		RefreshHiddenCmd(m.Hidden),
		TickCmd(),
	)
}

// listing resolves a listing stream by name.
func (m *Model) listing(name string) *stream.Listing {
	if name == streamTV {
		return m.TVStream
	}
	return m.MovieStream
}

func listingMediaType(name string) domain.MediaType {
	if name == streamTV {
		return domain.MediaTypeTV
	}
	return domain.MediaTypeMovie
}

func carouselMediaType(name string) domain.MediaType {
	if name == carouselPopularTV {
		return domain.MediaTypeTV
	}
	return domain.MediaTypeMovie
}

// beginListing issues the next page fetch for a listing stream, if allowed.
func (m *Model) beginListing(name string) tea.Cmd {
	l := m.listing(name)
	t, ok := l.Begin()
	if !ok {
		return nil
	}
	return LoadPageCmd(name, m.Discovery, listingMediaType(name), t)
}

// beginCarousel issues the next page fetch for a carousel, if allowed.
func (m *Model) beginCarousel(name string) tea.Cmd {
	c := m.Carousels[name]
	t, ok := c.Begin()
	if !ok {
		return nil
	}
	if name == carouselRecommended {
		return LoadRecommendationsCmd(name, m.Discovery, carouselMediaType(name), t)
	}
	return LoadCarouselPageCmd(name, m.Discovery, carouselMediaType(name), t)
}

// bindStreams points every stream at its selected instance and kicks off the
// initial fetches. Cached first pages are painted immediately so the UI is
// not blank while the network round trips.
func (m *Model) bindStreams() []tea.Cmd {
	movieRef := m.Selection.Movie()
	tvRef := m.Selection.TV()

	// Bind first: SetInstance clears the grid, so the cached paint must
	// come after it or the fresh fetch's placeholder wipes it.
	m.MovieStream.SetInstance(movieRef)
	m.TVStream.SetInstance(tvRef)

	if m.Cache != nil {
		if pg, ok := m.Cache.LoadPage(streamMovies, movieRef, 1); ok {
			m.MovieGrid.RenderPage(pg.Items)
		}
		if pg, ok := m.Cache.LoadPage(streamTV, tvRef, 1); ok {
			m.TVGrid.RenderPage(pg.Items)
		}
	}

	cmds := []tea.Cmd{
		m.beginListing(streamMovies),
		m.beginListing(streamTV),
	}
	for _, name := range discoverRowOrder {
		ref := movieRef
		if carouselMediaType(name) == domain.MediaTypeTV {
			ref = tvRef
		}
		m.Carousels[name].SetInstance(ref)
		cmds = append(cmds, m.beginCarousel(name))
	}
	return cmds
}

// rebindKind re-targets the streams of one media kind after the active
// instance changed. In-flight responses for the old instance resolve stale.
func (m *Model) rebindKind(mediaType domain.MediaType, ref domain.InstanceRef) []tea.Cmd {
	var cmds []tea.Cmd
	if mediaType == domain.MediaTypeTV {
		m.TVStream.SetInstance(ref)
		cmds = append(cmds, m.beginListing(streamTV))
	} else {
		m.MovieStream.SetInstance(ref)
		cmds = append(cmds, m.beginListing(streamMovies))
	}
	for _, name := range discoverRowOrder {
		if carouselMediaType(name) != mediaType {
			continue
		}
		m.Carousels[name].SetInstance(ref)
		cmds = append(cmds, m.beginCarousel(name))
	}
	return cmds
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.SpinnerFrame++
		m.MovieGrid.SetSpinnerFrame(m.SpinnerFrame)
		m.TVGrid.SetSpinnerFrame(m.SpinnerFrame)
		m.SearchGrid.SetSpinnerFrame(m.SpinnerFrame)
		for _, row := range m.Rows {
			row.SetSpinnerFrame(m.SpinnerFrame)
		}
		return m, TickCmd()

	case SelectionLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("selection load failed, using defaults", "error", msg.Err)
		}
		return m, tea.Batch(m.bindStreams()...)

	case HiddenLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("hidden sets load failed", "error", msg.Err)
		}
		return m, nil

	case PageLoadedMsg:
		return m.handlePageLoaded(msg)

	case CarouselPageMsg:
		c, ok := m.Carousels[msg.Carousel]
		if !ok {
			return m, nil
		}
		if c.Resolve(msg.Ticket, msg.Page, msg.Err) == stream.OutcomeFailed {
			// Carousels fail quietly; the row just shows empty.
			m.logger.Debug("carousel load failed", "carousel", msg.Carousel, "error", msg.Err)
		}
		return m, nil

	case SearchDebounceMsg:
		return m.handleSearchDebounce(msg)

	case SearchResultsMsg:
		return m.handleSearchResults(msg)

	case InstancesLoadedMsg:
		if msg.Err != nil {
			m.State = StateBrowsing
			return m.setStatus(friendlyError(msg.Err), true)
		}
		m.Picker.SetInstances(msg.Instances)
		return m, nil

	case RequestOptionsMsg:
		if m.State != StateRequestModal || msg.Instance != m.Modal.Instance() {
			return m, nil
		}
		if msg.Err != nil {
			m.Modal.SetError(friendlyError(msg.Err))
			return m, nil
		}
		m.Modal.SetOptions(msg.Folders, msg.Profiles)
		return m, nil

	case RequestSubmittedMsg:
		if msg.Err != nil {
			if m.State == StateRequestModal && m.Modal.Card().TmdbID == msg.TmdbID {
				m.Modal.SetError(friendlyError(msg.Err))
				return m, nil
			}
			return m.setStatus(friendlyError(msg.Err), true)
		}
		// Card slices belong to the event loop; the sync runs here, not in
		// the fetch goroutine.
		m.Cards.Apply(msg.TmdbID, msg.MediaType, msg.Status)
		if m.State == StateRequestModal && m.Modal.Card().TmdbID == msg.TmdbID {
			m.State = StateBrowsing
		}
		return m.setStatus("Requested "+msg.Title, false)

	case RequestDeletedMsg:
		if msg.Err != nil {
			return m.setStatus(friendlyError(msg.Err), true)
		}
		m.Cards.Apply(msg.TmdbID, msg.MediaType, domain.CardStatus{})
		return m.setStatus("Request removed", false)

	case UnhideDoneMsg:
		if msg.Err != nil {
			return m.setStatus(friendlyError(msg.Err), true)
		}
		return m.setStatus("Item unhidden, refresh to see it", false)

	case StatusMsg:
		return m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		m.StatusText = ""
		m.StatusIsErr = false
		return m, nil

	case ErrMsg:
		return m.setStatus(msg.Error(), true)
	}

	return m, nil
}

func (m Model) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	l := m.listing(msg.Stream)
	switch l.Resolve(msg.Ticket, msg.Page, msg.Err) {
	case stream.OutcomeFailed:
		return m.setStatus(friendlyError(msg.Err), true)
	case stream.OutcomeApplied:
		if msg.Ticket.Page == 1 && m.Cache != nil {
			if err := m.Cache.SavePage(msg.Stream, msg.Ticket.Instance, 1, msg.Page); err != nil {
				m.logger.Debug("page cache write failed", "stream", msg.Stream, "error", err)
			}
		}
		// A heavily filtered page can leave the cursor still near the end,
		// so re-check the trigger after every settle.
		grid := m.MovieGrid
		if msg.Stream == streamTV {
			grid = m.TVGrid
		}
		if grid.NearEnd() && l.CanLoadMore() {
			return m, m.beginListing(msg.Stream)
		}
	}
	return m, nil
}

func (m Model) handleSearchDebounce(msg SearchDebounceMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.SearchBar.Seq() {
		return m, nil
	}
	query := m.SearchBar.Value()
	if query == "" {
		m.SearchGrid.ClearGrid()
		m.searchHits = nil
		return m, nil
	}
	m.searchHits = nil
	m.searchQuery = query

	// Instant local hits from already-loaded cards while the network round
	// trips; server results replace them when they arrive.
	filter := service.NewFilter()
	filter.Index(append(append([]domain.MediaCard(nil), m.MovieGrid.Cards()...), m.TVGrid.Cards()...))
	if local := filter.Match(query); len(local) > 0 {
		cards := make([]domain.MediaCard, len(local))
		for i, r := range local {
			cards[i] = r.Card
		}
		m.SearchGrid.RenderPage(cards)
	}

	m.SearchGrid.SetLoading()
	return m, tea.Batch(
		SearchCmd(m.Discovery, query, domain.MediaTypeMovie, m.Selection.Movie(), msg.Seq),
		SearchCmd(m.Discovery, query, domain.MediaTypeTV, m.Selection.TV(), msg.Seq),
	)
}

func (m Model) handleSearchResults(msg SearchResultsMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.SearchBar.Seq() {
		// A newer keystroke generation owns the grid now.
		return m, nil
	}
	m.SearchGrid.ClearLoading()
	if msg.Err != nil {
		return m.setStatus(friendlyError(msg.Err), true)
	}

	for _, card := range msg.Results {
		if m.Hidden.Visible(card) {
			m.searchHits = append(m.searchHits, card)
		}
	}
	ranked := service.RankSearchResults(m.searchHits, m.searchQuery)
	m.SearchGrid.RenderPage(ranked)
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.State {
	case StateRequestModal:
		return m.handleModalKey(msg)
	case StateInstancePicker:
		return m.handlePickerKey(msg)
	case StateHelp:
		m.State = StateBrowsing
		return m, nil
	}

	// Search input swallows most keys while focused.
	if m.Tab == ViewSearch && m.SearchBar.Focused() {
		switch {
		case key.Matches(msg, Keys.Escape):
			m.SearchBar.Blur()
			return m, nil
		case key.Matches(msg, Keys.Enter):
			m.SearchBar.Blur()
			return m, nil
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		}
		cmd, changed := m.SearchBar.Update(msg)
		if changed {
			return m, tea.Batch(cmd, DebounceSearchCmd(m.SearchBar.Seq()))
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Discover):
		m.Tab = ViewDiscover
		m.updateFocus()
		return m, nil

	case key.Matches(msg, Keys.Movies):
		m.Tab = ViewMovies
		m.updateFocus()
		return m, nil

	case key.Matches(msg, Keys.TV):
		m.Tab = ViewTV
		m.updateFocus()
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.Tab = ViewSearch
		m.updateFocus()
		return m, m.SearchBar.Focus()

	case key.Matches(msg, Keys.Instance):
		mediaType := m.activeMediaType()
		m.Picker.Open(mediaType, m.Selection.Instance(mediaType))
		m.State = StateInstancePicker
		return m, LoadInstancesCmd(m.Settings)

	case key.Matches(msg, Keys.Refresh):
		return m.refreshActiveView()

	case key.Matches(msg, Keys.Request), key.Matches(msg, Keys.Enter):
		return m.openRequestModal()

	case key.Matches(msg, Keys.Delete):
		card, ok := m.selectedCard()
		if !ok || !card.State().Deletable() {
			return m, nil
		}
		return m, DeleteRequestCmd(m.Requests, card.TmdbID, card.MediaType)

	case key.Matches(msg, Keys.Unhide):
		card, ok := m.selectedCard()
		if !ok {
			return m, nil
		}
		return m, UnhideCmd(m.Hidden, card.TmdbID, card.MediaType)
	}

	return m.handleNavKey(msg)
}

func (m Model) handleNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Tab {
	case ViewDiscover:
		return m.handleDiscoverNav(msg)
	case ViewSearch:
		if key.Matches(msg, Keys.Search) || msg.String() == "/" {
			return m, m.SearchBar.Focus()
		}
		m.moveGrid(m.SearchGrid, msg)
		return m, nil
	case ViewTV:
		m.moveGrid(m.TVGrid, msg)
		if m.TVGrid.NearEnd() && m.TVStream.CanLoadMore() {
			return m, m.beginListing(streamTV)
		}
		return m, nil
	default:
		m.moveGrid(m.MovieGrid, msg)
		if m.MovieGrid.NearEnd() && m.MovieStream.CanLoadMore() {
			return m, m.beginListing(streamMovies)
		}
		return m, nil
	}
}

func (m *Model) moveGrid(g *components.Grid, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, Keys.Up):
		g.MoveUp()
	case key.Matches(msg, Keys.Down):
		g.MoveDown()
	case key.Matches(msg, Keys.Left):
		g.MoveLeft()
	case key.Matches(msg, Keys.Right):
		g.MoveRight()
	}
}

func (m Model) handleDiscoverNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name := discoverRowOrder[m.FocusedRow]
	row := m.Rows[name]

	switch {
	case key.Matches(msg, Keys.Down), key.Matches(msg, Keys.NextRow):
		if m.FocusedRow < len(discoverRowOrder)-1 {
			m.FocusedRow++
		}
		m.updateFocus()
		return m, nil
	case key.Matches(msg, Keys.Up), key.Matches(msg, Keys.PrevRow):
		if m.FocusedRow > 0 {
			m.FocusedRow--
		}
		m.updateFocus()
		return m, nil
	case key.Matches(msg, Keys.Left):
		row.MoveLeft()
		return m, nil
	case key.Matches(msg, Keys.Right):
		row.MoveRight()
		if row.NearEnd() && m.Carousels[name].CanLoadMore() {
			return m, m.beginCarousel(name)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape):
		if !m.Modal.Submitting() {
			m.State = StateBrowsing
		}
		return m, nil
	case key.Matches(msg, Keys.NextRow):
		m.Modal.NextField()
		return m, nil
	case key.Matches(msg, Keys.Up):
		m.Modal.MoveUp()
		return m, nil
	case key.Matches(msg, Keys.Down):
		m.Modal.MoveDown()
		return m, nil
	case key.Matches(msg, Keys.Enter):
		req, ok := m.Modal.Confirm()
		if !ok {
			return m, nil
		}
		return m, SubmitRequestCmd(m.Requests, req, m.Modal.Card().Title)
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape):
		m.State = StateBrowsing
		return m, nil
	case key.Matches(msg, Keys.Up):
		m.Picker.MoveUp()
		return m, nil
	case key.Matches(msg, Keys.Down):
		m.Picker.MoveDown()
		return m, nil
	case key.Matches(msg, Keys.Enter):
		ref, ok := m.Picker.Selected()
		m.State = StateBrowsing
		if !ok {
			return m, nil
		}
		mediaType := m.Picker.MediaType()
		m.Selection.Set(mediaType, ref)
		return m, tea.Batch(m.rebindKind(mediaType, ref)...)
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// openRequestModal opens the request flow for the selected card, if it is
// requestable. Owned cards get a status hint instead.
func (m Model) openRequestModal() (tea.Model, tea.Cmd) {
	card, ok := m.selectedCard()
	if !ok {
		return m, nil
	}
	if !card.State().Requestable() {
		return m.setStatus(card.Title+" is already "+card.State().String(), false)
	}

	ref := card.SuggestedInstance
	if ref.IsZero() {
		ref = m.Selection.Instance(card.MediaType)
	}
	m.Modal.Open(card, ref)
	m.State = StateRequestModal
	return m, LoadRequestOptionsCmd(m.Requests, ref)
}

// refreshActiveView re-issues page 1 for whatever the user is looking at,
// refreshes the hidden sets, and drops the stream's cached pages so a stale
// cache cannot repaint items the refresh was meant to remove.
func (m Model) refreshActiveView() (tea.Model, tea.Cmd) {
	m.Hidden.Invalidate()
	cmds := []tea.Cmd{RefreshHiddenCmd(m.Hidden)}
	switch m.Tab {
	case ViewMovies:
		m.dropCachedPages(streamMovies, m.MovieStream.Selection())
		m.MovieStream.Invalidate()
		cmds = append(cmds, m.beginListing(streamMovies))
	case ViewTV:
		m.dropCachedPages(streamTV, m.TVStream.Selection())
		m.TVStream.Invalidate()
		cmds = append(cmds, m.beginListing(streamTV))
	case ViewDiscover:
		for _, name := range discoverRowOrder {
			ref := m.Carousels[name].Selection()
			m.Carousels[name].SetInstance(ref)
			cmds = append(cmds, m.beginCarousel(name))
		}
	}
	return m, tea.Batch(cmds...)
}

// dropCachedPages invalidates the local page cache for one stream+instance.
func (m *Model) dropCachedPages(name string, ref domain.InstanceRef) {
	if m.Cache == nil {
		return
	}
	if err := m.Cache.InvalidateStream(name, ref); err != nil {
		m.logger.Debug("page cache invalidation failed", "stream", name, "error", err)
	}
}

// selectedCard returns the card under the cursor of the active surface.
func (m *Model) selectedCard() (domain.MediaCard, bool) {
	switch m.Tab {
	case ViewDiscover:
		return m.Rows[discoverRowOrder[m.FocusedRow]].Selected()
	case ViewMovies:
		return m.MovieGrid.Selected()
	case ViewTV:
		return m.TVGrid.Selected()
	default:
		return m.SearchGrid.Selected()
	}
}

// activeMediaType returns the media kind the instance picker should target
// for the active view.
func (m *Model) activeMediaType() domain.MediaType {
	if m.Tab == ViewTV {
		return domain.MediaTypeTV
	}
	return domain.MediaTypeMovie
}

func (m Model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.StatusText = text
	m.StatusIsErr = isErr
	return m, ClearStatusCmd()
}

// friendlyError maps transport sentinels to short status-bar text.
func friendlyError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrServerOffline):
		return "Server offline"
	case errors.Is(err, domain.ErrTimeout):
		return "Request timed out"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized: check your API key"
	case errors.Is(err, domain.ErrNotFound):
		return "Not found"
	default:
		return err.Error()
	}
}
