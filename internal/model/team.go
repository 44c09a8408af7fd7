package model

type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	League       string `json:"league"`
	LogoURL      string `json:"logoUrl"`
	Followers    int64  `json:"followers"`
}

type GetTeamsRequest struct {
	League string `json:"league"`
}

type GetTeamsResponse struct {
	Teams []Team `json:"teams"`
}

type GetFollowedTeamsRequest struct{}

type GetFollowedTeamsResponse struct {
	Teams []Team `json:"teams"`
}

type FollowTeamRequest struct {
	TeamID string `json:"teamId"`
}

type FollowTeamResponse struct{}

type UnfollowTeamRequest struct {
	TeamID string `json:"teamId"`
}

type UnfollowTeamResponse struct{}
