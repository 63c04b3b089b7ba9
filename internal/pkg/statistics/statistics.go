package statistics

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/neotaste/creator-portal/app/models"
	"github.com/neotaste/creator-portal/internal/pkg/cache"
	"github.com/neotaste/creator-portal/internal/pkg/database"
)

const (
	CacheKeyCreatorsTotal   = "statistics:creators:total"
	CacheKeyVideosPending   = "statistics:videos:pending"
	CacheKeyInvoicesPending = "statistics:invoices:pending"
	CacheExpiration         = 30 * time.Minute
)

// StatisticsData holds the review queue counters shown on the admin page
type StatisticsData struct {
	TotalCreators   int
	PendingVideos   int
	PendingInvoices int
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// ShouldUpdateCache checks whether the cache is stale
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the cache when the interval elapsed
func UpdateCacheIfNeeded() {
	if ShouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		if err := UpdateStatisticsCache(); err != nil {
			log.Printf("Error updating statistics cache: %v", err)
		} else {
			lastCacheUpdate = time.Now()
		}
	}
}

// ResetCacheUpdateTimer forces the next read to refresh the cache
func ResetCacheUpdateTimer() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	lastCacheUpdate = time.Time{}
}

// UpdateStatisticsCache updates all statistics in the cache
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var totalCreators int64
	if err := db.Model(&models.Creator{}).Where("role = ?", models.ROLE_CREATOR).Count(&totalCreators).Error; err != nil {
		log.Printf("Error counting creators: %v", err)
		return err
	}

	var pendingVideos int64
	if err := db.Model(&models.Video{}).Where("status = ?", models.VideoStatusPending).Count(&pendingVideos).Error; err != nil {
		log.Printf("Error counting pending videos: %v", err)
		return err
	}

	var pendingInvoices int64
	if err := db.Model(&models.Invoice{}).Where("status = ?", models.InvoiceStatusPending).Count(&pendingInvoices).Error; err != nil {
		log.Printf("Error counting pending invoices: %v", err)
		return err
	}

	if err := cache.Set(CacheKeyCreatorsTotal, strconv.FormatInt(totalCreators, 10), CacheExpiration); err != nil {
		log.Printf("Error caching creator count: %v", err)
		return err
	}
	if err := cache.Set(CacheKeyVideosPending, strconv.FormatInt(pendingVideos, 10), CacheExpiration); err != nil {
		log.Printf("Error caching pending video count: %v", err)
		return err
	}
	if err := cache.Set(CacheKeyInvoicesPending, strconv.FormatInt(pendingInvoices, 10), CacheExpiration); err != nil {
		log.Printf("Error caching pending invoice count: %v", err)
		return err
	}

	log.Printf("Statistics updated in cache: Creators: %d, Pending Videos: %d, Pending Invoices: %d",
		totalCreators, pendingVideos, pendingInvoices)

	return nil
}

func getCachedCount(key string, countFn func() (int64, error)) int {
	val, err := cache.Get(key)
	if err != nil {
		count, err := countFn()
		if err != nil {
			log.Printf("Error counting for %s: %v", key, err)
			return 0
		}

		if err := cache.Set(key, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
			log.Printf("Error caching %s: %v", key, err)
		}

		return int(count)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}

	return int(count)
}

// GetTotalCreators returns the number of creator accounts from cache or database
func GetTotalCreators() int {
	return getCachedCount(CacheKeyCreatorsTotal, func() (int64, error) {
		var count int64
		err := database.GetDB().Model(&models.Creator{}).Where("role = ?", models.ROLE_CREATOR).Count(&count).Error
		return count, err
	})
}

// GetPendingVideos returns the number of videos awaiting review from cache or database
func GetPendingVideos() int {
	return getCachedCount(CacheKeyVideosPending, func() (int64, error) {
		var count int64
		err := database.GetDB().Model(&models.Video{}).Where("status = ?", models.VideoStatusPending).Count(&count).Error
		return count, err
	})
}

// GetPendingInvoices returns the number of invoices awaiting review from cache or database
func GetPendingInvoices() int {
	return getCachedCount(CacheKeyInvoicesPending, func() (int64, error) {
		var count int64
		err := database.GetDB().Model(&models.Invoice{}).Where("status = ?", models.InvoiceStatusPending).Count(&count).Error
		return count, err
	})
}

// GetStatisticsData returns all statistics data as StatisticsData structure
func GetStatisticsData() StatisticsData {
	UpdateCacheIfNeeded()

	return StatisticsData{
		TotalCreators:   GetTotalCreators(),
		PendingVideos:   GetPendingVideos(),
		PendingInvoices: GetPendingInvoices(),
	}
}
