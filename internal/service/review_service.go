package service

import (
	"context"
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/errs"
	"github.com/RoyceAzure/lab/storefront/internal/infra/backend"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/rs/zerolog"
)

type IReviewService interface {
	// Load 載入商品評論第一頁, 重置分頁狀態
	// 已登入時一併取得該用戶是否已評論與其內容 (編輯表單預填)
	Load(ctx context.Context, productID string, sort constants.ReviewSortEnum) (*model.ReviewPage, error)
	// LoadMore 載入下一頁並append到現有清單, 不取代
	// 已無下一頁時為no-op
	LoadMore(ctx context.Context) error
	// Submit 建立或更新評論
	// create或update由快取的userHasReviewed決定
	//
	// 送出前驗證 (不過就不發請求):
	//   - rating必須為1~5, 否則errs.InvalidArgumentCode "Please select a rating"
	//   - comment長度10~1000字元
	//
	// 錯誤:
	//   - errs.UnauthenticatedCode: 未登入
	//   - errs.BadRequestCode: 後端業務錯誤 (message原樣帶出)
	Submit(ctx context.Context, draft model.ReviewDraft) (*model.Review, error)
	// RequestDelete 標記待刪除, 等待明確確認
	RequestDelete()
	// CancelDelete 取消待刪除標記
	CancelDelete()
	// ConfirmDelete 確認後刪除自己的評論並重置本地已評論狀態
	//
	// 錯誤:
	//   - errs.InvalidArgumentCode: 未先RequestDelete
	//   - errs.UnauthenticatedCode: 未登入
	ConfirmDelete(ctx context.Context) error
	// VoteHelpful 評論按讚, 需登入
	// 以server回傳的計數覆蓋本地值, 不自行遞增, 避免多session間drift
	VoteHelpful(ctx context.Context, reviewID string) (int, error)
	// Reviews 當前已載入的評論清單快照 (含append的歷史分頁)
	Reviews() []model.Review
	Stats() model.ReviewStats
	UserReview() *model.Review
	HasMore() bool
}

// ReviewService 單一商品頁的評論狀態
// 換商品頁時重新Load即可
type ReviewService struct {
	reviewAPI   backend.IReviewAPI
	authService IAuthService
	logger      *zerolog.Logger
	pageSize    int

	mu            sync.RWMutex
	productID     string
	sort          constants.ReviewSortEnum
	page          int
	totalPages    int
	reviews       []model.Review
	stats         model.ReviewStats
	hasReviewed   bool
	userReview    *model.Review
	pendingDelete bool
	generation    uint64 //丟棄過期的Load回應
}

func NewReviewService(reviewAPI backend.IReviewAPI, authService IAuthService, pageSize int, logger *zerolog.Logger) IReviewService {
	if reviewAPI == nil {
		panic("review service initialization failed: reviewAPI cannot be nil")
	}
	if authService == nil {
		panic("review service initialization failed: authService cannot be nil")
	}
	if pageSize < 1 {
		pageSize = constants.DefaultReviewPageSize
	}

	return &ReviewService{
		reviewAPI:   reviewAPI,
		authService: authService,
		logger:      logger,
		pageSize:    pageSize,
	}
}

func (s *ReviewService) Load(ctx context.Context, productID string, sort constants.ReviewSortEnum) (*model.ReviewPage, error) {
	if !constants.IsValidReviewSortEnum(string(sort)) {
		sort = constants.DefaultReviewSort
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	page, err := s.reviewAPI.List(ctx, productID, sort, constants.DefaultReviewPage, s.pageSize)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		if s.logger != nil {
			s.logger.Debug().Uint64("generation", gen).Msg("stale review load dropped")
		}
		return page, nil
	}

	s.productID = productID
	s.sort = sort
	s.page = page.Page
	s.totalPages = page.TotalPages
	s.reviews = page.Reviews
	s.stats = page.Stats
	s.hasReviewed = page.UserHasReviewed
	s.userReview = page.UserReview
	s.pendingDelete = false
	return page, nil
}

func (s *ReviewService) LoadMore(ctx context.Context) error {
	s.mu.RLock()
	productID := s.productID
	sort := s.sort
	nextPage := s.page + 1
	hasMore := s.page < s.totalPages
	s.mu.RUnlock()

	if productID == "" || !hasMore {
		return nil
	}

	page, err := s.reviewAPI.List(ctx, productID, sort, nextPage, s.pageSize)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	//append而非取代
	s.reviews = append(s.reviews, page.Reviews...)
	s.page = page.Page
	s.totalPages = page.TotalPages
	s.stats = page.Stats
	return nil
}

// validateDraft 送出前的client端驗證
func validateDraft(draft model.ReviewDraft) error {
	if draft.Rating < constants.ReviewRatingMin || draft.Rating > constants.ReviewRatingMax {
		return errs.New(errs.InvalidArgumentCode, "Please select a rating")
	}
	if len(draft.Comment) < constants.ReviewCommentMinLen {
		return errs.Newf(errs.InvalidArgumentCode, "Review must be at least %d characters", constants.ReviewCommentMinLen)
	}
	if len(draft.Comment) > constants.ReviewCommentMaxLen {
		return errs.Newf(errs.InvalidArgumentCode, "Review must be at most %d characters", constants.ReviewCommentMaxLen)
	}
	return nil
}

func (s *ReviewService) Submit(ctx context.Context, draft model.ReviewDraft) (*model.Review, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	if !s.authService.IsAuthenticated() {
		return nil, errs.New(errs.UnauthenticatedCode, "")
	}

	s.mu.RLock()
	productID := s.productID
	hasReviewed := s.hasReviewed
	userReview := s.userReview
	s.mu.RUnlock()

	if productID == "" {
		return nil, errs.New(errs.InvalidArgumentCode, "no product loaded")
	}

	var review *model.Review
	var err error
	if hasReviewed && userReview != nil {
		review, err = s.reviewAPI.Update(ctx, userReview.ID, draft)
	} else {
		review, err = s.reviewAPI.Create(ctx, productID, draft)
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.hasReviewed = true
	s.userReview = review
	s.mu.Unlock()
	return review, nil
}

func (s *ReviewService) RequestDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userReview != nil {
		s.pendingDelete = true
	}
}

func (s *ReviewService) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = false
}

func (s *ReviewService) ConfirmDelete(ctx context.Context) error {
	if !s.authService.IsAuthenticated() {
		return errs.New(errs.UnauthenticatedCode, "")
	}

	s.mu.RLock()
	pending := s.pendingDelete
	userReview := s.userReview
	s.mu.RUnlock()

	if !pending || userReview == nil {
		return errs.New(errs.InvalidArgumentCode, "no pending delete confirmation")
	}

	if err := s.reviewAPI.Delete(ctx, userReview.ID); err != nil {
		return err
	}

	s.mu.Lock()
	s.hasReviewed = false
	s.userReview = nil
	s.pendingDelete = false
	//同步移除本地清單內自己的評論
	for i := range s.reviews {
		if s.reviews[i].ID == userReview.ID {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *ReviewService) VoteHelpful(ctx context.Context, reviewID string) (int, error) {
	if !s.authService.IsAuthenticated() {
		return 0, errs.New(errs.UnauthenticatedCode, "")
	}

	count, err := s.reviewAPI.VoteHelpful(ctx, reviewID)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	for i := range s.reviews {
		if s.reviews[i].ID == reviewID {
			s.reviews[i].HelpfulCount = count
			break
		}
	}
	s.mu.Unlock()
	return count, nil
}

func (s *ReviewService) Reviews() []model.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]model.Review, len(s.reviews))
	copy(snapshot, s.reviews)
	return snapshot
}

func (s *ReviewService) Stats() model.ReviewStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *ReviewService) UserReview() *model.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.userReview == nil {
		return nil
	}
	review := *s.userReview
	return &review
}

func (s *ReviewService) HasMore() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page < s.totalPages
}
