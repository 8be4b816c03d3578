package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type Experience struct {
	UserID    *OptionalID `json:"userId"`
	Company   string      `json:"company"`
	Position  string      `json:"position"`
	StartDate *string     `json:"startDate"`
	EndDate   *string     `json:"endDate"`
	IsCurrent bool        `json:"isCurrent"`
}

type ExperienceResponse struct {
	Message      string `json:"message"`
	ExperienceID int64  `json:"experienceId"`
}

// OptionalID accepts an identifier sent either as a JSON number or as a
// numeric string, which is how browser forms usually hand it over.
type OptionalID int64

func (id *OptionalID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", data)
	}
	*id = OptionalID(v)
	return nil
}
