package models

type Award struct {
	Name   string `json:"name"`
	Year   int    `json:"year"`
	Issuer string `json:"issuer,omitempty"`
}

type Review struct {
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Date   string  `json:"date"`
	Text   string  `json:"text"`
}

type Member struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	FullDescription string   `json:"fullDescription,omitempty"`
	Category        string   `json:"category,omitempty"`
	Location        string   `json:"location,omitempty"`
	Size            string   `json:"size,omitempty"`
	Popularity      string   `json:"popularity,omitempty"`
	FoundingYear    int      `json:"foundingYear,omitempty"`
	MembershipLevel string   `json:"membershipLevel,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Address         string   `json:"address,omitempty"`
	Website         string   `json:"website,omitempty"`
	ImgSrc          string   `json:"imgSrc,omitempty"`
	ImgAlt          string   `json:"imgAlt,omitempty"`
	Awards          []Award  `json:"awards,omitempty"`
	Reviews         []Review `json:"reviews,omitempty"`
}

type MemberQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Location string `form:"location"`
	Size     string `form:"size"`
	Sort     string `form:"sort"`
	Loads    int    `form:"loads"`
}

type MemberFacets struct {
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
	Sizes      []string `json:"sizes"`
}

type ClubDetails struct {
	MembersCount int    `json:"membersCount"`
	Frequency    string `json:"frequency,omitempty"`
	Location     string `json:"location,omitempty"`
}

type Club struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Image       string             `json:"image,omitempty"`
	Details     ClubDetails        `json:"details"`
	JoiningFees map[string]float64 `json:"joiningFees,omitempty"`
}

type TransportOption struct {
	Type         string   `json:"type"`
	Fee          float64  `json:"fee"`
	PickupPoints []string `json:"pickupPoints,omitempty"`
}

type Snack struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Event struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Date             string             `json:"date"`
	Time             string             `json:"time,omitempty"`
	Location         string             `json:"location"`
	Description      string             `json:"description"`
	FullDescription  string             `json:"fullDescription,omitempty"`
	Image            string             `json:"image,omitempty"`
	Pricing          map[string]float64 `json:"pricing,omitempty"`
	TransportOptions []TransportOption  `json:"transportOptions,omitempty"`
	SnacksAvailable  []Snack            `json:"snacksAvailable,omitempty"`
}

type BlogPost struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Excerpt          string   `json:"excerpt"`
	Author           string   `json:"author"`
	Category         string   `json:"category,omitempty"`
	Date             string   `json:"date,omitempty"`
	Image            string   `json:"image,omitempty"`
	FullContent      string   `json:"fullContent,omitempty"`
	FullContentArray []string `json:"fullContentArray,omitempty"`
}

type NewsArticle struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Summary              string `json:"summary"`
	FullText             string `json:"fullText,omitempty"`
	Date                 string `json:"date"`
	Image                string `json:"image,omitempty"`
	Link                 string `json:"link,omitempty"`
	HasDedicatedPage     bool   `json:"hasDedicatedPage,omitempty"`
	IsFeaturedOnHomepage bool   `json:"isFeaturedOnHomepage,omitempty"`
}

type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

type BoardMember struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Title  string      `json:"title"`
	Bio    string      `json:"bio,omitempty"`
	Image  string      `json:"image,omitempty"`
	Social SocialLinks `json:"social"`
}

// Board is the only data set stored as an object rather than a flat array.
type Board struct {
	BoardMembers  []BoardMember `json:"boardMembers"`
	ExecutiveTeam []BoardMember `json:"executiveTeam"`
}

type DiscoverItem struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Address       string `json:"address,omitempty"`
	Image         string `json:"image,omitempty"`
	LearnMoreLink string `json:"learnMoreLink,omitempty"`
}

type MemberAward struct {
	MemberID   string `json:"memberId"`
	MemberName string `json:"memberName"`
	MemberImg  string `json:"memberImg,omitempty"`
	Award      Award  `json:"award"`
}

type AwardQuery struct {
	Search   string `form:"search"`
	Year     string `form:"year"`
	MemberID string `form:"memberId"`
	Sort     string `form:"sort"`
	Loads    int    `form:"loads"`
}

type MemberReview struct {
	MemberID   string `json:"memberId"`
	MemberName string `json:"memberName"`
	MemberImg  string `json:"memberImg,omitempty"`
	Review     Review `json:"review"`
}

// Batch is one "load more" window over a filtered list.
type Batch struct {
	Items   interface{} `json:"items"`
	Shown   int         `json:"shown"`
	Total   int         `json:"total"`
	HasMore bool        `json:"hasMore"`
}

type MemberRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AwardFacets struct {
	Years   []int       `json:"years"`
	Members []MemberRef `json:"members"`
}
