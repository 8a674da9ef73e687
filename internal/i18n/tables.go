package i18n

var tables = map[Language]map[Key]string{
	Vietnamese: {
		KeyTitle:    "CV Analyzer AI",
		KeySubtitle: "🚀 Upload CV của bạn và nhận phân tích chi tiết từ AI trong vài giây",

		KeyFeaturesFast:     "⚡ Nhanh chóng",
		KeyFeaturesAccurate: "🎯 Chính xác",
		KeyFeaturesFree:     "🆓 Miễn phí",

		KeyBatchAnalysis: "📊 Batch Analysis - Phân tích nhiều CV",
		KeyBackToSingle:  "← Quay lại Single Analysis",

		KeySelectModel: "🤖 Chọn AI Model",

		KeyJobDescription:            "Job Description (Tùy chọn)",
		KeyJobDescriptionSub:         "Click để nhập yêu cầu công việc",
		KeyJobDescriptionEntered:     "✓ Đã nhập JD - Click để chỉnh sửa",
		KeyJobDescriptionLabel:       "📝 Nhập Job Description hoặc Yêu cầu công việc",
		KeyJobDescriptionPlaceholder: "Ví dụ:\n\nVị trí: Senior Backend Developer\n\nYêu cầu:\n- 3+ năm kinh nghiệm Python/Django\n- Thành thạo PostgreSQL, Redis\n- Kinh nghiệm với AWS/Docker\n- Kỹ năng làm việc nhóm tốt\n- Tiếng Anh giao tiếp\n\nƯu tiên:\n- Có kinh nghiệm lead team\n- Biết về microservices",
		KeyJobDescriptionInfo:        "AI sẽ so sánh CV với yêu cầu này và đưa ra điểm số + phân tích chi tiết",
		KeyDeleteJD:                  "🗑️ Xóa JD",

		KeyUploadCV:        "📤 Kéo thả CV hoặc click để chọn",
		KeyDropHere:        "🎯 Thả file vào đây",
		KeySupportedFormat: "Hỗ trợ: PDF, DOCX, TXT (Tối đa 10MB)",
		KeyAnalyzing:       "Đang phân tích CV...",
		KeyPleaseWait:      "Vui lòng đợi trong giây lát",
		KeyAIProcessing:    "AI đang xử lý, vui lòng đợi 🤖",

		KeyAnalyzeNewCV: "Phân tích CV mới",
		KeyAnalyzeAll:   "🚀 Phân tích tất cả CV",
		KeyExportExcel:  "📥 Export Excel",

		KeyScoringTitle: "📊 Điểm Đánh Giá & Job Matching",
		KeyOverallScore: "Điểm Tổng Thể",
		KeyMatchWithJD:  "Phù Hợp với JD",
		KeyMatchRate:    "Match Rate",

		KeySkillsScore:     "Kỹ năng (30%)",
		KeyExperienceScore: "Kinh nghiệm (30%)",
		KeyEducationScore:  "Học vấn (20%)",
		KeySoftSkillsScore: "Kỹ năng mềm (20%)",

		KeyMatchingSkills: "Skills Phù Hợp",
		KeyMissingSkills:  "Skills Thiếu",
		KeyRedFlags:       "Red Flags",

		KeySkills:          "Kỹ năng",
		KeyExperience:      "Kinh nghiệm",
		KeyEducation:       "Học vấn",
		KeyStrengths:       "Điểm mạnh",
		KeyRecommendations: "Gợi ý cải thiện",
		KeyNoInfo:          "Không có thông tin",
		KeyUnknown:         "Không xác định",
		KeyNotAvailable:    "N/A",

		KeyAISuggestions:        "🤖 AI Suggestions",
		KeyAISuggestionsDesc:    "Phân tích chuyên sâu từ AI",
		KeyInterviewQuestions:   "Câu hỏi phỏng vấn đề xuất",
		KeySalaryRecommendation: "Mức lương đề xuất",
		KeyNoSalaryInfo:         "Chưa có thông tin",
		KeyCareerPath:           "Lộ trình phát triển",

		KeyBatchTitle:          "📊 Batch CV Analysis",
		KeyBatchSubtitle:       "Upload nhiều CV cùng lúc, so sánh và export Excel",
		KeySelectMultipleFiles: "📁 Chọn nhiều CV (Tối đa 10 files)",
		KeyFilesSelected:       "Đã chọn {count} file(s):",
		KeyResults:             "Kết quả ({count} CVs)",

		KeyRank:          "#",
		KeyName:          "Tên",
		KeyScore:         "Điểm",
		KeyMatch:         "Match %",
		KeySkillsLabel:   "Skills",
		KeyRedFlagsLabel: "Red Flags",
		KeyClean:         "✓ Clean",
		KeyFlags:         "⚠️ {count} flag(s)",

		KeySuccessMessage:    "Phân tích thành công!",
		KeySuccessSubMessage: "Bò và Mèo đã hoàn thành công việc! 🎉",
		KeyErrorMessage:      "Có lỗi xảy ra khi phân tích CV. Vui lòng thử lại!",
		KeySelectAtLeastOne:  "Vui lòng chọn ít nhất 1 CV",
		KeyBatchError:        "Có lỗi xảy ra khi phân tích!",
		KeyExportError:       "Có lỗi khi export Excel!",
		KeyUnsupportedFile:   "Chỉ hỗ trợ file PDF, DOCX, TXT",
		KeyFileTooLarge:      "File quá lớn. Vui lòng chọn file dưới 10MB!",
	},
	Korean: {
		KeyTitle:    "CV Analyzer AI",
		KeySubtitle: "🚀 이력서를 업로드하고 몇 초 안에 AI의 상세한 분석을 받으세요",

		KeyFeaturesFast:     "⚡ 빠름",
		KeyFeaturesAccurate: "🎯 정확함",
		KeyFeaturesFree:     "🆓 무료",

		KeyBatchAnalysis: "📊 일괄 분석 - 여러 이력서 분석",
		KeyBackToSingle:  "← 단일 분석으로 돌아가기",

		KeySelectModel: "🤖 AI 모델 선택",

		KeyJobDescription:            "직무 설명 (선택사항)",
		KeyJobDescriptionSub:         "클릭하여 직무 요구사항 입력",
		KeyJobDescriptionEntered:     "✓ JD 입력됨 - 클릭하여 수정",
		KeyJobDescriptionLabel:       "📝 직무 설명 또는 요구사항 입력",
		KeyJobDescriptionPlaceholder: "예시:\n\n직위: 시니어 백엔드 개발자\n\n요구사항:\n- Python/Django 3년 이상 경험\n- PostgreSQL, Redis 능숙\n- AWS/Docker 경험\n- 팀워크 능력\n- 영어 의사소통\n\n우대사항:\n- 팀 리드 경험\n- 마이크로서비스 지식",
		KeyJobDescriptionInfo:        "AI가 이력서를 이 요구사항과 비교하여 점수 + 상세 분석을 제공합니다",
		KeyDeleteJD:                  "🗑️ JD 삭제",

		KeyUploadCV:        "📤 이력서를 드래그하거나 클릭하여 선택",
		KeyDropHere:        "🎯 여기에 파일 놓기",
		KeySupportedFormat: "지원: PDF, DOCX, TXT (최대 10MB)",
		KeyAnalyzing:       "이력서 분석 중...",
		KeyPleaseWait:      "잠시만 기다려주세요",
		KeyAIProcessing:    "AI가 처리 중입니다, 잠시만 기다려주세요 🤖",

		KeyAnalyzeNewCV: "새 이력서 분석",
		KeyAnalyzeAll:   "🚀 모든 이력서 분석",
		KeyExportExcel:  "📥 Excel 내보내기",

		KeyScoringTitle: "📊 평가 점수 & 직무 매칭",
		KeyOverallScore: "종합 점수",
		KeyMatchWithJD:  "JD 적합도",
		KeyMatchRate:    "매칭률",

		KeySkillsScore:     "기술 (30%)",
		KeyExperienceScore: "경력 (30%)",
		KeyEducationScore:  "학력 (20%)",
		KeySoftSkillsScore: "소프트 스킬 (20%)",

		KeyMatchingSkills: "일치하는 기술",
		KeyMissingSkills:  "부족한 기술",
		KeyRedFlags:       "주의사항",

		KeySkills:          "기술",
		KeyExperience:      "경력",
		KeyEducation:       "학력",
		KeyStrengths:       "강점",
		KeyRecommendations: "개선 제안",
		KeyNoInfo:          "정보 없음",
		KeyUnknown:         "알 수 없음",
		KeyNotAvailable:    "N/A",

		KeyAISuggestions:        "🤖 AI 제안",
		KeyAISuggestionsDesc:    "AI의 심층 분석",
		KeyInterviewQuestions:   "추천 면접 질문",
		KeySalaryRecommendation: "추천 급여",
		KeyNoSalaryInfo:         "정보 없음",
		KeyCareerPath:           "경력 개발 경로",

		KeyBatchTitle:          "📊 일괄 이력서 분석",
		KeyBatchSubtitle:       "여러 이력서를 동시에 업로드하고 비교 및 Excel로 내보내기",
		KeySelectMultipleFiles: "📁 여러 이력서 선택 (최대 10개)",
		KeyFilesSelected:       "{count}개 파일 선택됨:",
		KeyResults:             "결과 ({count}개 이력서)",

		KeyRank:          "#",
		KeyName:          "이름",
		KeyScore:         "점수",
		KeyMatch:         "매칭 %",
		KeySkillsLabel:   "기술",
		KeyRedFlagsLabel: "주의사항",
		KeyClean:         "✓ 문제없음",
		KeyFlags:         "⚠️ {count}개 주의사항",

		KeySuccessMessage:    "분석 완료!",
		KeySuccessSubMessage: "소와 고양이가 작업을 완료했습니다! 🎉",
		KeyErrorMessage:      "이력서 분석 중 오류가 발생했습니다. 다시 시도해주세요!",
		KeySelectAtLeastOne:  "최소 1개의 이력서를 선택해주세요",
		KeyBatchError:        "분석 중 오류가 발생했습니다!",
		KeyExportError:       "Excel 내보내기 중 오류가 발생했습니다!",
		KeyUnsupportedFile:   "PDF, DOCX, TXT 파일만 지원됩니다",
		KeyFileTooLarge:      "파일이 너무 큽니다. 10MB 이하의 파일을 선택해주세요!",
	},
}
