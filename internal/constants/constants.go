package constants

const (
	//分頁
	DefaultReviewPageSize int = 5
	DefaultReviewPage     int = 1
)

// ReviewSortEnum 評論排序方式
type ReviewSortEnum string

const (
	DefaultReviewSort ReviewSortEnum = "newest"
	ReviewSortNewest  ReviewSortEnum = "newest"
	ReviewSortOldest  ReviewSortEnum = "oldest"
	ReviewSortHighest ReviewSortEnum = "highest"
	ReviewSortLowest  ReviewSortEnum = "lowest"
	ReviewSortHelpful ReviewSortEnum = "helpful"
)

func IsValidReviewSortEnum(sort string) bool {
	switch ReviewSortEnum(sort) {
	case ReviewSortNewest, ReviewSortOldest, ReviewSortHighest, ReviewSortLowest, ReviewSortHelpful:
		return true
	default:
		return false
	}
}

// EnquirySource 詢價單來源標記
type EnquirySource string

const (
	EnquirySourceCart    EnquirySource = "cart"
	EnquirySourceContact EnquirySource = "contact-form"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"
	RequestIDHeaderKey      = "X-Request-ID"
)

// 評論驗證邊界
const (
	ReviewRatingMin     = 1
	ReviewRatingMax     = 5
	ReviewCommentMinLen = 10
	ReviewCommentMaxLen = 1000
)

// SignInRedirectMessage 未登入時導向登入頁帶的提示訊息
const SignInRedirectMessage = "Please sign in to request a quote"

// SignInPath 登入頁路徑 (redirect intent用)
const SignInPath = "/signin"
