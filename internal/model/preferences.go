package model

// PreferencesSchemaVersion 偏好结构当前版本；旧版本记录中缺失的字段视为未知
const PreferencesSchemaVersion = 2

type CustomerRole string

const (
	RoleDeveloper         CustomerRole = "developer"
	RoleAdministrator     CustomerRole = "administrator"
	RoleDataAnalyst       CustomerRole = "data_analyst"
	RoleStudent           CustomerRole = "student"
	RoleSolutionArchitect CustomerRole = "solution_architect"
	RoleIT                CustomerRole = "it"
	RoleDataEngineer      CustomerRole = "data_engineer"
	RoleSecurityEngineer  CustomerRole = "security_engineer"
	RoleAIEngineer        CustomerRole = "ai_engineer"
)

var CustomerRoles = []CustomerRole{
	RoleDeveloper, RoleAdministrator, RoleDataAnalyst, RoleStudent, RoleSolutionArchitect,
	RoleIT, RoleDataEngineer, RoleSecurityEngineer, RoleAIEngineer,
}

type LearningGoal string

const (
	GoalCasual       LearningGoal = "casual"
	GoalProfessional LearningGoal = "professional"
	GoalSkill        LearningGoal = "skill"
)

type WeeklyFrequency string

const (
	FrequencyOnce    WeeklyFrequency = "once"
	FrequencyTwice   WeeklyFrequency = "twice"
	FrequencyThrice  WeeklyFrequency = "thrice"
	FrequencyWeekday WeeklyFrequency = "weekday"
	FrequencyWeekend WeeklyFrequency = "weekend"
	FrequencyDaily   WeeklyFrequency = "daily"
)

type LearningExperience string

const (
	ExperienceVoice       LearningExperience = "voice"
	ExperienceInteractive LearningExperience = "interactive"
	ExperienceBoth        LearningExperience = "both"
)

// TargetTime 单次学习目标时长（分钟）
type TargetTime int

var TargetTimes = []TargetTime{5, 10, 15, 20}

// Preferences 五个字段相互独立且均可缺省，整体替换更新
// swagger:model Preferences
type Preferences struct {
	SchemaVersion      int                `json:"schemaVersion,omitempty"`
	CustomerRole       CustomerRole       `json:"customerRole,omitempty"`
	LearningGoal       LearningGoal       `json:"learningGoal,omitempty"`
	WeeklyFrequency    WeeklyFrequency    `json:"weeklyFrequency,omitempty"`
	LearningExperience LearningExperience `json:"learningExperience,omitempty"`
	TargetTime         TargetTime         `json:"targetTime,omitempty"`
}

// IsComplete 五个字段同时存在才算完成引导
func (p *Preferences) IsComplete() bool {
	if p == nil {
		return false
	}
	return p.CustomerRole != "" &&
		p.LearningGoal != "" &&
		p.TargetTime != 0 &&
		p.WeeklyFrequency != "" &&
		p.LearningExperience != ""
}
