package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Egor213/LogiWatch/internal/domain"
)

const (
	topUsersCount = 5
	latestCount   = 5
)

// buildSnapshot summarizes records, which must already be in display order.
func buildSnapshot(records []domain.LogRecord, today string) domain.DashboardSnapshot {
	snap := domain.DashboardSnapshot{TotalRecords: len(records)}

	users := map[string]int{}
	ips := map[string]struct{}{}
	urls := map[string]struct{}{}

	for _, r := range records {
		users[r.User]++
		ips[r.IP] = struct{}{}
		urls[r.URL] = struct{}{}
		if r.Date == today {
			snap.Today++
		}
		if h, err := strconv.Atoi(strings.SplitN(r.Time, ":", 2)[0]); err == nil && h >= 0 && h < 24 {
			snap.ByHour[h]++
		}
	}

	snap.UniqueUsers = len(users)
	snap.UniqueIPs = len(ips)
	snap.UniqueURLs = len(urls)

	top := make([]domain.UserCount, 0, len(users))
	for u, n := range users {
		top = append(top, domain.UserCount{User: u, Count: n})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].User < top[j].User
	})
	if len(top) > topUsersCount {
		top = top[:topUsersCount]
	}
	snap.TopUsers = top

	n := min(latestCount, len(records))
	snap.Latest = append([]domain.LogRecord(nil), records[:n]...)

	return snap
}
