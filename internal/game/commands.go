package game

import (
	"sort"
	"strconv"
	"strings"

	"github.com/minsukang/idlequest-backend/pkg/enums"
	"github.com/sahilm/fuzzy"
)

type commandKind int

const (
	cmdNone commandKind = iota
	cmdHelp
	cmdCancel
	cmdShowInfo
	cmdShowStats
	cmdRequestStatAllocation
	cmdAttendance
	cmdEnhance
	cmdRequestJobSelection
	cmdRequestAdventureSelection
)

type aliasSet struct {
	kind    commandKind
	aliases []string
}

// Global commands match on the whole normalized utterance, so a bare "직업"
// opens job selection while "직업 전사" stays parseable as a continuation.
var commandAliasSets = []aliasSet{
	{cmdHelp, []string{"도움", "도움말", "help"}},
	{cmdCancel, []string{"취소", "cancel"}},
	{cmdShowInfo, []string{"내정보", "정보", "me", "info"}},
	{cmdShowStats, []string{"스탯", "능력치", "stats"}},
	{cmdRequestStatAllocation, []string{"스탯 사용", "스탯사용", "stat use"}},
	{cmdAttendance, []string{"출석", "출석체크", "attendance"}},
	{cmdEnhance, []string{"강화", "enhance", "upgrade"}},
	{cmdRequestJobSelection, []string{"직업", "직업 선택", "직업선택", "job"}},
	{cmdRequestAdventureSelection, []string{"모험", "adventure"}},
}

var globalAliases = buildAliasIndex()

var aliasList = func() []string {
	aliases := make([]string, 0, len(globalAliases))
	for alias := range globalAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}()

func buildAliasIndex() map[string]commandKind {
	index := make(map[string]commandKind, 32)
	for _, set := range commandAliasSets {
		for _, alias := range set.aliases {
			index[alias] = set.kind
		}
	}
	return index
}

// normalizeUtterance lowercases, strips a leading slash, and collapses runs
// of whitespace so "/스탯  사용" and "스탯 사용" resolve identically.
func normalizeUtterance(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	fields[0] = strings.TrimPrefix(fields[0], "/")
	for i, field := range fields {
		fields[i] = strings.ToLower(field)
	}
	return strings.TrimSpace(strings.Join(fields, " "))
}

func matchGlobal(normalized string) (commandKind, bool) {
	kind, ok := globalAliases[normalized]
	if !ok {
		return cmdNone, false
	}
	return kind, true
}

func parseJobLabel(label string) (enums.Job, bool) {
	switch label {
	case "전사", "warrior":
		return enums.JobWarrior, true
	case "마법사", "mage":
		return enums.JobMage, true
	case "닌자", "ninja":
		return enums.JobNinja, true
	}
	return "", false
}

func parseDifficultyLabel(label string) (enums.Difficulty, bool) {
	switch label {
	case "쉬움", "easy":
		return enums.DifficultyEasy, true
	case "보통", "normal":
		return enums.DifficultyNormal, true
	case "어려움", "hard":
		return enums.DifficultyHard, true
	}
	return "", false
}

func jobName(job enums.Job) string {
	switch job {
	case enums.JobWarrior:
		return "전사"
	case enums.JobMage:
		return "마법사"
	case enums.JobNinja:
		return "닌자"
	}
	return job.String()
}

func difficultyName(difficulty enums.Difficulty) string {
	switch difficulty {
	case enums.DifficultyEasy:
		return "쉬움"
	case enums.DifficultyNormal:
		return "보통"
	case enums.DifficultyHard:
		return "어려움"
	}
	return difficulty.String()
}

func parseJobChoice(normalized string) (enums.Job, bool) {
	tokens := strings.Fields(normalized)
	if len(tokens) != 2 {
		return "", false
	}
	if tokens[0] != "직업" && tokens[0] != "job" {
		return "", false
	}
	return parseJobLabel(tokens[1])
}

func parseAdventureChoice(normalized string) (enums.Difficulty, bool) {
	tokens := strings.Fields(normalized)
	if len(tokens) != 2 {
		return "", false
	}
	if tokens[0] != "모험" && tokens[0] != "adventure" {
		return "", false
	}
	return parseDifficultyLabel(tokens[1])
}

// parseStatAllocation accepts "<stat> <amount>" where amount is a positive
// integer. Zero and negative amounts are grammar mismatches, not engine
// rejections.
func parseStatAllocation(normalized string) (enums.Stat, int, bool) {
	tokens := strings.Fields(normalized)
	if len(tokens) != 2 {
		return "", 0, false
	}
	stat, err := enums.ParseStat(tokens[0])
	if err != nil {
		return "", 0, false
	}
	amount, err := strconv.Atoi(tokens[1])
	if err != nil || amount <= 0 {
		return "", 0, false
	}
	return stat, amount, true
}

func jobMenu() []Choice {
	return []Choice{
		{Label: "전사", MessageText: "직업 전사"},
		{Label: "마법사", MessageText: "직업 마법사"},
		{Label: "닌자", MessageText: "직업 닌자"},
	}
}

func difficultyMenu() []Choice {
	return []Choice{
		{Label: "쉬움", MessageText: "모험 쉬움"},
		{Label: "보통", MessageText: "모험 보통"},
		{Label: "어려움", MessageText: "모험 어려움"},
	}
}

// suggestCommand returns the closest known alias for an unrecognized
// utterance, when fuzzy matching finds one at all.
func suggestCommand(normalized string) (string, bool) {
	if normalized == "" {
		return "", false
	}
	matches := fuzzy.Find(normalized, aliasList)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
