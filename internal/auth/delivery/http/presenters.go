package http

import (
	"voice-task-uploader/internal/auth"
)

// --- Request DTOs ---

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}

type languageReq struct {
	Language string `json:"language" binding:"required"`
}

// --- Response DTOs ---

type loginResp struct {
	Username     string `json:"username"`
	LanguageKey  string `json:"language_key"`
	LanguageCode string `json:"language_code"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		Username:     out.Session.Username,
		LanguageKey:  out.Session.LanguageKey,
		LanguageCode: out.Session.LanguageCode,
	}
}

type languageResp struct {
	LanguageKey  string `json:"language_key"`
	LanguageCode string `json:"language_code"`
}

type languageOptionResp struct {
	Key   string `json:"key"`
	Code  string `json:"code"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

type projectResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type pageResp struct {
	Username            string               `json:"username"`
	Languages           []languageOptionResp `json:"languages"`
	SelectedLanguageKey string               `json:"selected_language_key"`
	DefaultProjectID    string               `json:"default_project_id,omitempty"`
	Projects            []projectResp        `json:"projects"`
	ProjectsError       string               `json:"projects_error,omitempty"`
}

func (h *handler) newPageResp(out auth.PageOutput) pageResp {
	languages := make([]languageOptionResp, len(out.Languages))
	for i, choice := range out.Languages {
		languages[i] = languageOptionResp{
			Key:   choice.Key,
			Code:  choice.Option.Code,
			Label: choice.Option.Label,
			Emoji: choice.Option.Emoji,
		}
	}

	projects := make([]projectResp, len(out.Projects))
	for i, p := range out.Projects {
		projects[i] = projectResp{ID: p.ID, Name: p.Name}
	}

	return pageResp{
		Username:            out.Username,
		Languages:           languages,
		SelectedLanguageKey: out.SelectedLanguageKey,
		DefaultProjectID:    out.DefaultProjectID,
		Projects:            projects,
		ProjectsError:       out.ProjectsError,
	}
}
